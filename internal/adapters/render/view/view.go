package view

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/techsillies-cli/internal/application"
	"github.com/bnema/techsillies-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type ReferralOptions struct {
	View   domain.ReferralView
	Status domain.ReferralStatus
	Now    time.Time
}

func Feed(feed application.FeedView) (string, error) {
	return run(func(s styles) string { return renderFeed(feed, s) })
}

func Profile(profile domain.UserProfile) (string, error) {
	return run(func(s styles) string { return renderProfile(profile, s) })
}

func Connections(connections []domain.UserProfile, term string) (string, error) {
	return run(func(s styles) string { return renderConnections(connections, term, s) })
}

func Requests(requests []domain.ConnectionRequest) (string, error) {
	return run(func(s styles) string { return renderRequests(requests, s) })
}

func Referrals(referrals []domain.ReferralRequest, opts ReferralOptions) (string, error) {
	return run(func(s styles) string { return renderReferrals(referrals, opts, s) })
}

func Stats(stats domain.FeedStats) (string, error) {
	return run(func(s styles) string { return renderStats(stats, s) })
}

func renderFeed(feed application.FeedView, s styles) string {
	header := fmt.Sprintf("users: %d", len(feed.Entries))
	switch {
	case feed.Searching:
		header += fmt.Sprintf(" | search: %q", feed.SearchTerm)
	case feed.Exhausted:
		header += " | end of feed"
	default:
		header += fmt.Sprintf(" | next page: %d", feed.NextPage)
	}

	lines := []string{s.title.Render("Discover"), s.header.Render(header)}
	if len(feed.Entries) == 0 {
		empty := "No users yet. Run `tsl feed more` to load a page."
		if feed.Searching {
			empty = "No users match this search."
		} else if feed.Exhausted {
			empty = "You have seen everyone for now."
		}
		return lipgloss.JoinVertical(lipgloss.Left, append(lines, s.empty.Render(empty))...)
	}

	for _, entry := range feed.Entries {
		card := []string{
			lipgloss.JoinHorizontal(lipgloss.Top, userTitle(entry.User, s), " ", statusBadge(entry.Status, s)),
		}
		card = append(card, userDetails(entry.User, s)...)
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, card...)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderProfile(profile domain.UserProfile, s styles) string {
	lines := []string{userTitle(profile, s)}
	lines = append(lines, userDetails(profile, s)...)
	if about := strings.TrimSpace(profile.About); about != "" {
		lines = append(lines, s.section.Render(s.detail.Render(about)))
	}
	if profile.Email != "" {
		lines = append(lines, s.meta.Render("email: "+profile.Email))
	}
	if profile.ImageURL != "" {
		lines = append(lines, s.meta.Render("photo: "+profile.ImageURL))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderConnections(connections []domain.UserProfile, term string, s styles) string {
	header := fmt.Sprintf("connections: %d", len(connections))
	if strings.TrimSpace(term) != "" {
		header += fmt.Sprintf(" | filter: %q", strings.TrimSpace(term))
	}

	lines := []string{s.title.Render("Connections"), s.header.Render(header)}
	if len(connections) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, append(lines, s.empty.Render("No connections found."))...)
	}

	for _, user := range connections {
		card := append([]string{userTitle(user, s)}, userDetails(user, s)...)
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, card...)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderRequests(requests []domain.ConnectionRequest, s styles) string {
	lines := []string{
		s.title.Render("Connection Requests"),
		s.header.Render(fmt.Sprintf("pending: %d", len(requests))),
	}
	if len(requests) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, append(lines, s.empty.Render("No pending requests."))...)
	}

	for _, request := range requests {
		card := []string{
			lipgloss.JoinHorizontal(lipgloss.Top, userTitle(request.From, s), " ", s.meta.Render("request "+string(request.ID))),
		}
		card = append(card, userDetails(request.From, s)...)
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, card...)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderReferrals(referrals []domain.ReferralRequest, opts ReferralOptions, s styles) string {
	title := "Referrals Received"
	if opts.View == domain.ReferralsSent {
		title = "Referrals Sent"
	}

	header := fmt.Sprintf("referrals: %d", len(referrals))
	if opts.View != domain.ReferralsSent && opts.Status != "" {
		header += " | " + strings.ToLower(string(opts.Status))
	}

	lines := []string{s.title.Render(title), s.header.Render(header)}
	if len(referrals) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, append(lines, s.empty.Render("No referral requests."))...)
	}

	for _, referral := range referrals {
		counterpart, role := referral.Sender, "from"
		if opts.View == domain.ReferralsSent {
			counterpart, role = referral.Receiver, "to"
		}

		card := []string{
			lipgloss.JoinHorizontal(lipgloss.Top,
				s.meta.Render(role),
				" ",
				userTitle(counterpart, s),
				" ",
				referralBadge(referral.Status, s),
			),
			s.meta.Render("referral " + string(referral.ID) + " | " + formatRelative(referral.CreatedAt, opts.Now)),
			s.key.Render("job:    ") + s.detail.Render(referral.JobLink),
			s.key.Render("resume: ") + s.detail.Render(referral.ResumeLink),
		}
		if msg := strings.TrimSpace(referral.Message); msg != "" {
			card = append(card, s.detail.Render(msg))
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, card...)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderStats(stats domain.FeedStats, s styles) string {
	rows := []struct {
		label string
		value int
	}{
		{label: "users", value: stats.TotalUsers},
		{label: "active users", value: stats.ActiveUsers},
		{label: "referrals", value: stats.TotalReferrals},
		{label: "accepted", value: stats.TotalAccepted},
		{label: "pending", value: stats.TotalPending},
	}

	lines := []string{s.title.Render("Community")}
	for _, row := range rows {
		lines = append(lines, s.key.Render(fmt.Sprintf("%-13s", row.label+":"))+" "+s.detail.Render(fmt.Sprintf("%d", row.value)))
	}

	if stats.TotalReferrals > 0 {
		rate := 100 * float64(stats.TotalAccepted) / float64(stats.TotalReferrals)
		lines = append(lines, s.section.Render(lipgloss.JoinHorizontal(lipgloss.Top,
			s.key.Render("acceptance:"),
			" ",
			renderProgressBar(rate, 24, s),
			" ",
			s.detail.Render(fmt.Sprintf("%2.0f%%", clampPercent(rate))),
		)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func userTitle(user domain.UserProfile, s styles) string {
	name := user.DisplayName()
	if name == "" {
		name = "(unnamed)"
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, s.name.Render(name), " ", s.id.Render("("+string(user.ID)+")"))
}

func userDetails(user domain.UserProfile, s styles) []string {
	var lines []string

	var role []string
	for _, part := range []string{user.Headline, user.Company} {
		if part = strings.TrimSpace(part); part != "" {
			role = append(role, part)
		}
	}
	if len(role) > 0 {
		lines = append(lines, s.detail.Render(strings.Join(role, " @ ")))
	}
	if len(user.Skills) > 0 {
		lines = append(lines, s.skill.Render(strings.Join(user.Skills, " · ")))
	}
	return lines
}

func statusBadge(status domain.ConnectionStatus, s styles) string {
	switch status {
	case domain.StatusInterested:
		return s.interested.Render("[interested]")
	case domain.StatusIgnored:
		return s.ignored.Render("[ignored]")
	default:
		return ""
	}
}

func referralBadge(status domain.ReferralStatus, s styles) string {
	switch status {
	case domain.ReferralAccepted:
		return s.accepted.Render("[accepted]")
	case domain.ReferralRejected:
		return s.rejected.Render("[rejected]")
	default:
		return s.pending.Render("[pending]")
	}
}

func renderProgressBar(percent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampPercent(percent) / 100))
	empty := width - filled

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", empty)),
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func formatRelative(at, now time.Time) string {
	if at.IsZero() {
		return "date unknown"
	}
	if now.IsZero() {
		return at.Format("02 Jan 2006 15:04")
	}

	elapsed := now.Sub(at)
	switch {
	case elapsed < time.Minute:
		return "just now"
	case elapsed < time.Hour:
		return plural(int(elapsed.Minutes()), "minute") + " ago"
	case elapsed < 24*time.Hour:
		return plural(int(elapsed.Hours()), "hour") + " ago"
	case elapsed < 7*24*time.Hour:
		return plural(int(elapsed.Hours()/24), "day") + " ago"
	default:
		return at.Format("02 Jan 2006")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
