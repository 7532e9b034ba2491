package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/techsillies-cli/internal/domain"
	"github.com/bnema/techsillies-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	SessionPathKey    = "session.path"
	SessionPersistKey = "session.persist"

	sessionFileMode   = 0o600
	sessionDirMode    = 0o700
	sessionConfigDir  = ".techsillies"
	sessionConfigFile = "session.toml"
	tempFilePattern   = ".session-*.toml.tmp"
)

// Persistable session slices, as named in session.persist.
const (
	SliceUser        = "user"
	SliceFeed        = "feed"
	SliceConnections = "connections"
	SliceRequests    = "requests"
)

var allSlices = []string{SliceUser, SliceFeed, SliceConnections, SliceRequests}

type Repository struct {
	sessionPath string
	persist     map[string]bool
	mu          *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.SessionRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetDefault(SessionPathKey, filepath.Join(homeDir, sessionConfigDir, sessionConfigFile))
	cfg.SetDefault(SessionPersistKey, allSlices)

	sessionPath := cfg.GetString(SessionPathKey)
	if sessionPath == "" {
		return nil, errors.New("session path is empty")
	}
	sessionPath, err = normalizeSessionPath(sessionPath)
	if err != nil {
		return nil, err
	}

	persist, err := parsePersist(cfg.GetStringSlice(SessionPersistKey))
	if err != nil {
		return nil, err
	}

	return &Repository{sessionPath: sessionPath, persist: persist, mu: lockForPath(sessionPath)}, nil
}

func (r *Repository) Path() string {
	return r.sessionPath
}

func (r *Repository) Load(ctx context.Context) (domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return domain.Session{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.Session{}, err
	}

	return fromSchema(file).Normalized(), nil
}

// Save mirrors the whole session. Slices excluded from session.persist are written empty.
func (r *Repository) Save(ctx context.Context, session domain.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file := toSchema(r.filter(session.Normalized()))

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *Repository) filter(session domain.Session) domain.Session {
	if !r.persist[SliceUser] {
		session.CurrentUser = nil
	}
	if !r.persist[SliceFeed] {
		session.Feed = domain.FeedState{}
	}
	if !r.persist[SliceConnections] {
		session.Connections = nil
	}
	if !r.persist[SliceRequests] {
		session.Requests = nil
	}
	return session
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.sessionPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read session file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode session file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.sessionPath), sessionDirMode); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode session file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.sessionPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp session file: %w", err)
	}

	if err := tempFile.Chmod(sessionFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp session file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp session file: %w", err)
	}

	if err := os.Rename(tempName, r.sessionPath); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}

	cleanup = false

	return nil
}

func parsePersist(slices []string) (map[string]bool, error) {
	persist := make(map[string]bool, len(allSlices))
	for _, raw := range slices {
		for _, name := range strings.Split(raw, ",") {
			name = strings.ToLower(strings.TrimSpace(name))
			if name == "" {
				continue
			}
			switch name {
			case SliceUser, SliceFeed, SliceConnections, SliceRequests:
				persist[name] = true
			default:
				return nil, fmt.Errorf("unknown session slice %q in %s", name, SessionPersistKey)
			}
		}
	}
	return persist, nil
}

func normalizeSessionPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve session path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func toSchema(session domain.Session) fileSchema {
	file := fileSchema{
		Feed: feedSchema{
			NextPage:  session.Feed.NextPage,
			Exhausted: session.Feed.Exhausted,
			Paged:     userIDsToStrings(session.Feed.Paged),
		},
	}

	if session.CurrentUser != nil {
		user := toUserSchema(*session.CurrentUser)
		file.User = &user
	}

	for _, entry := range session.Feed.Entries {
		file.Feed.Entries = append(file.Feed.Entries, feedEntrySchema{
			Status: string(entry.Status),
			User:   toUserSchema(entry.User),
		})
	}

	if session.Feed.Search != nil {
		file.Feed.Search = &searchSchema{
			Term:    session.Feed.Search.Term,
			Results: userIDsToStrings(session.Feed.Search.Results),
		}
	}

	for _, connection := range session.Connections {
		file.Connections = append(file.Connections, toUserSchema(connection))
	}

	for _, request := range session.Requests {
		file.Requests = append(file.Requests, requestSchema{
			ID:       string(request.ID),
			ToUserID: string(request.ToUserID),
			Status:   string(request.Status),
			From:     toUserSchema(request.From),
		})
	}

	return file
}

func fromSchema(file fileSchema) domain.Session {
	session := domain.Session{
		Feed: domain.FeedState{
			NextPage:  file.Feed.NextPage,
			Exhausted: file.Feed.Exhausted,
			Paged:     stringsToUserIDs(file.Feed.Paged),
		},
	}

	if file.User != nil {
		user := fromUserSchema(*file.User)
		session.CurrentUser = &user
	}

	for _, entry := range file.Feed.Entries {
		session.Feed.Entries = append(session.Feed.Entries, domain.FeedEntry{
			User:   fromUserSchema(entry.User),
			Status: domain.ConnectionStatus(entry.Status),
		})
	}

	if file.Feed.Search != nil {
		session.Feed.Search = &domain.FeedSearch{
			Term:    file.Feed.Search.Term,
			Results: stringsToUserIDs(file.Feed.Search.Results),
		}
	}

	for _, connection := range file.Connections {
		session.Connections = append(session.Connections, fromUserSchema(connection))
	}

	for _, request := range file.Requests {
		session.Requests = append(session.Requests, domain.ConnectionRequest{
			ID:       domain.RequestID(request.ID),
			ToUserID: domain.UserID(request.ToUserID),
			Status:   domain.RequestStatus(request.Status),
			From:     fromUserSchema(request.From),
		})
	}

	return session
}

func toUserSchema(user domain.UserProfile) userSchema {
	return userSchema{
		ID:        string(user.ID),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Headline:  user.Headline,
		Company:   user.Company,
		About:     user.About,
		Skills:    user.Skills,
		ImageURL:  user.ImageURL,
		Email:     user.Email,
	}
}

func fromUserSchema(user userSchema) domain.UserProfile {
	return domain.UserProfile{
		ID:        domain.UserID(user.ID),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Headline:  user.Headline,
		Company:   user.Company,
		About:     user.About,
		Skills:    user.Skills,
		ImageURL:  user.ImageURL,
		Email:     user.Email,
	}
}

func userIDsToStrings(ids []domain.UserID) []string {
	if len(ids) == 0 {
		return nil
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, string(id))
	}
	return out
}

func stringsToUserIDs(values []string) []domain.UserID {
	if len(values) == 0 {
		return nil
	}
	out := make([]domain.UserID, 0, len(values))
	for _, value := range values {
		out = append(out, domain.UserID(value))
	}
	return out
}
