package toml

import "fmt"

const (
	currentSchemaVersion = 1
	sessionSchemaKey     = "root"
)

type fileSchema struct {
	Key         string          `toml:"key"`
	Version     int             `toml:"version"`
	User        *userSchema     `toml:"user,omitempty"`
	Feed        feedSchema      `toml:"feed"`
	Connections []userSchema    `toml:"connections,omitempty"`
	Requests    []requestSchema `toml:"requests,omitempty"`
}

func (s *fileSchema) applyDefaults() {
	if s.Key == "" {
		s.Key = sessionSchemaKey
	}
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Key != "" && s.Key != sessionSchemaKey {
		return fmt.Errorf("unexpected session key %q (want %q)", s.Key, sessionSchemaKey)
	}
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported session schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type userSchema struct {
	ID        string   `toml:"id"`
	FirstName string   `toml:"first_name"`
	LastName  string   `toml:"last_name,omitempty"`
	Headline  string   `toml:"headline,omitempty"`
	Company   string   `toml:"company,omitempty"`
	About     string   `toml:"about,omitempty"`
	Skills    []string `toml:"skills,omitempty"`
	ImageURL  string   `toml:"image_url,omitempty"`
	Email     string   `toml:"email,omitempty"`
}

type feedSchema struct {
	NextPage  int               `toml:"next_page"`
	Exhausted bool              `toml:"exhausted"`
	Paged     []string          `toml:"paged,omitempty"`
	Entries   []feedEntrySchema `toml:"entries,omitempty"`
	Search    *searchSchema     `toml:"search,omitempty"`
}

type feedEntrySchema struct {
	Status string     `toml:"status"`
	User   userSchema `toml:"user"`
}

type searchSchema struct {
	Term    string   `toml:"term"`
	Results []string `toml:"results,omitempty"`
}

type requestSchema struct {
	ID       string     `toml:"id"`
	ToUserID string     `toml:"to_user_id,omitempty"`
	Status   string     `toml:"status,omitempty"`
	From     userSchema `toml:"from"`
}
