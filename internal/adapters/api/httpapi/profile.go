package httpapi

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	"github.com/bnema/techsillies-cli/internal/domain"
)

func (c *Client) SignIn(ctx context.Context, email, password string) (domain.UserProfile, error) {
	req, err := jsonRequest(http.MethodPost, "/signin", "sign in", signInPayload{Email: email, Password: password})
	if err != nil {
		return domain.UserProfile{}, err
	}

	var out profileEnvelope
	if err := c.do(ctx, req, &out); err != nil {
		return domain.UserProfile{}, err
	}
	return out.profile(), nil
}

func (c *Client) SignUp(ctx context.Context, form domain.SignUp) (domain.UserProfile, error) {
	if err := form.Validate(); err != nil {
		return domain.UserProfile{}, err
	}

	req, err := jsonRequest(http.MethodPost, "/signup", "sign up", signUpPayload{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Password:  form.Password,
	})
	if err != nil {
		return domain.UserProfile{}, err
	}

	var out profileEnvelope
	if err := c.do(ctx, req, &out); err != nil {
		return domain.UserProfile{}, err
	}
	return out.profile(), nil
}

func (c *Client) SignOut(ctx context.Context) error {
	req, err := jsonRequest(http.MethodPost, "/signout", "sign out", struct{}{})
	if err != nil {
		return err
	}
	return c.do(ctx, req, nil)
}

func (c *Client) Profile(ctx context.Context) (domain.UserProfile, error) {
	var out profileEnvelope
	if err := c.do(ctx, request{method: http.MethodGet, path: "/profile/view", op: "view profile"}, &out); err != nil {
		return domain.UserProfile{}, err
	}
	return out.profile(), nil
}

// EditProfile sends the edit as multipart form data, with the image as an "image" file part.
func (c *Client) EditProfile(ctx context.Context, edit domain.ProfileEdit) (domain.UserProfile, error) {
	if err := edit.Validate(); err != nil {
		return domain.UserProfile{}, err
	}

	var body bytes.Buffer
	form := multipart.NewWriter(&body)

	fields := []struct{ name, value string }{
		{"firstName", edit.FirstName},
		{"lastName", edit.LastName},
		{"about", edit.About},
		{"company", edit.Company},
		{"headline", edit.Headline},
		{"skills", strings.Join(edit.Skills, ",")},
	}
	for _, field := range fields {
		if err := form.WriteField(field.name, field.value); err != nil {
			return domain.UserProfile{}, fmt.Errorf("write %s field: %w", field.name, err)
		}
	}

	if edit.Image != nil {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, edit.Image.Filename))
		header.Set("Content-Type", http.DetectContentType(edit.Image.Content))
		part, err := form.CreatePart(header)
		if err != nil {
			return domain.UserProfile{}, fmt.Errorf("create image part: %w", err)
		}
		if _, err := part.Write(edit.Image.Content); err != nil {
			return domain.UserProfile{}, fmt.Errorf("write image part: %w", err)
		}
	}

	if err := form.Close(); err != nil {
		return domain.UserProfile{}, fmt.Errorf("close profile form: %w", err)
	}

	req := request{
		method: http.MethodPatch,
		path:   "/profile/edit",
		body:   &body,
		header: http.Header{"Content-Type": []string{form.FormDataContentType()}},
		op:     "edit profile",
	}

	var out profileEnvelope
	if err := c.do(ctx, req, &out); err != nil {
		return domain.UserProfile{}, err
	}
	return out.profile(), nil
}

// OAuthURL is the Google sign-in entry point. The backend redirects to
// redirectURI with token and state query parameters once sign-in completes.
func (c *Client) OAuthURL(redirectURI, state string) string {
	query := url.Values{}
	query.Set("redirect_uri", redirectURI)
	query.Set("state", state)

	endpoint, err := c.endpoint("/auth/google", query)
	if err != nil {
		return strings.TrimRight(c.BaseURL, "/") + "/auth/google?" + query.Encode()
	}
	return endpoint
}
