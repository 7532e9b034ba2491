package domain

// Session is everything the client remembers between runs.
type Session struct {
	CurrentUser *UserProfile
	Feed        FeedState
	Connections []UserProfile
	Requests    []ConnectionRequest
}

func (s Session) Authenticated() bool {
	return s.CurrentUser != nil
}

// Normalized returns a copy where empty slices are nil so that in-memory and
// rehydrated sessions compare equal.
func (s Session) Normalized() Session {
	out := Session{
		Feed: FeedState{
			NextPage:  s.Feed.NextPage,
			Exhausted: s.Feed.Exhausted,
			Paged:     nilIfEmpty(s.Feed.Paged),
		},
	}

	if s.CurrentUser != nil {
		user := normalizeProfile(*s.CurrentUser)
		out.CurrentUser = &user
	}

	for _, entry := range s.Feed.Entries {
		entry.User = normalizeProfile(entry.User)
		if entry.Status == "" {
			entry.Status = StatusNone
		}
		out.Feed.Entries = append(out.Feed.Entries, entry)
	}

	if s.Feed.Search != nil {
		out.Feed.Search = &FeedSearch{Term: s.Feed.Search.Term, Results: nilIfEmpty(s.Feed.Search.Results)}
	}

	for _, connection := range s.Connections {
		out.Connections = append(out.Connections, normalizeProfile(connection))
	}

	for _, request := range s.Requests {
		request.From = normalizeProfile(request.From)
		out.Requests = append(out.Requests, request)
	}

	return out
}

func normalizeProfile(p UserProfile) UserProfile {
	p.Skills = nilIfEmpty(p.Skills)
	return p
}

func nilIfEmpty[T any](in []T) []T {
	if len(in) == 0 {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
