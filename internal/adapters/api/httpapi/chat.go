package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/bnema/techsillies-cli/internal/domain"
)

func (c *Client) ChatHistory(ctx context.Context, targetUserID domain.UserID) ([]domain.ChatMessage, error) {
	var out chatHistoryResponse
	if err := c.do(ctx, request{method: http.MethodGet, path: "/chat/" + escape(string(targetUserID)), op: "load chat history"}, &out); err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}

func (c *Client) RegisterPushToken(ctx context.Context, token string) error {
	if token == "" {
		return errors.New("push token is empty")
	}

	req, err := jsonRequest(http.MethodPost, "/user/fcm-token", "register push token", pushTokenPayload{Token: token})
	if err != nil {
		return err
	}
	return c.do(ctx, req, nil)
}
