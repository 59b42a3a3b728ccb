package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/events"
	"github.com/spec-kit/helpdesk-service/internal/repository"
)

type fakeTicketRepo struct {
	mu         sync.Mutex
	seq        int
	tickets    map[string]domain.Ticket
	lastFilter repository.TicketFilter
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{tickets: map[string]domain.Ticket{}}
}

func (r *fakeTicketRepo) Create(_ context.Context, ticket *domain.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	ticket.ID = fmt.Sprintf("ticket-%d", r.seq)
	ticket.Number = fmt.Sprintf("TKT-%07d", r.seq)
	r.tickets[ticket.ID] = *ticket
	return nil
}

func (r *fakeTicketRepo) Update(_ context.Context, ticket *domain.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tickets[ticket.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.tickets[ticket.ID] = *ticket
	return nil
}

func (r *fakeTicketRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tickets[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.tickets, id)
	return nil
}

func (r *fakeTicketRepo) GetByID(_ context.Context, id string) (*domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ticket, ok := r.tickets[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := ticket
	return &copied, nil
}

func (r *fakeTicketRepo) GetByNumber(_ context.Context, number string) (*domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ticket := range r.tickets {
		if ticket.Number == number {
			copied := ticket
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeTicketRepo) List(_ context.Context, filter repository.TicketFilter) ([]domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastFilter = filter
	out := make([]domain.Ticket, 0, len(r.tickets))
	for _, ticket := range r.tickets {
		if filter.RequesterID != nil && ticket.RequesterID != *filter.RequesterID {
			continue
		}
		out = append(out, ticket)
	}
	if filter.Offset >= len(out) {
		return nil, nil
	}
	out = out[filter.Offset:]
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *fakeTicketRepo) Count(_ context.Context, filter repository.TicketFilter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, ticket := range r.tickets {
		if filter.RequesterID != nil && ticket.RequesterID != *filter.RequesterID {
			continue
		}
		count++
	}
	return count, nil
}

func (r *fakeTicketRepo) NextNumber(_ context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fmt.Sprintf("TKT-%07d", r.seq+1), nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	seq   int
	users map[string]domain.User
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: map[string]domain.User{}}
	for _, user := range users {
		repo.users[user.ID] = *user
	}
	return repo
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	user.ID = fmt.Sprintf("user-%d", r.seq)
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			copied := user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) List(_ context.Context, limit, offset int) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		out = append(out, user)
	}
	return out, nil
}

type fakeCommentRepo struct {
	mu       sync.Mutex
	seq      int
	comments map[string]domain.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: map[string]domain.Comment{}}
}

func (r *fakeCommentRepo) Create(_ context.Context, comment *domain.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	comment.ID = fmt.Sprintf("comment-%d", r.seq)
	r.comments[comment.ID] = *comment
	return nil
}

func (r *fakeCommentRepo) Update(_ context.Context, comment *domain.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.comments[comment.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.comments[comment.ID] = *comment
	return nil
}

func (r *fakeCommentRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.comments[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.comments, id)
	return nil
}

func (r *fakeCommentRepo) GetByID(_ context.Context, id string) (*domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	comment, ok := r.comments[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := comment
	return &copied, nil
}

func (r *fakeCommentRepo) ListByTicket(_ context.Context, ticketID string) ([]domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Comment, 0)
	for i := 1; i <= r.seq; i++ {
		comment, ok := r.comments[fmt.Sprintf("comment-%d", i)]
		if ok && comment.TicketID == ticketID {
			out = append(out, comment)
		}
	}
	return out, nil
}

type fakeHistoryRepo struct {
	mu      sync.Mutex
	entries []domain.TicketHistory
}

func newFakeHistoryRepo() *fakeHistoryRepo {
	return &fakeHistoryRepo{}
}

func (r *fakeHistoryRepo) Create(_ context.Context, history *domain.TicketHistory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	history.ID = fmt.Sprintf("history-%d", len(r.entries)+1)
	r.entries = append(r.entries, *history)
	return nil
}

func (r *fakeHistoryRepo) ListByTicket(_ context.Context, ticketID string, limit, offset int) ([]domain.TicketHistory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.TicketHistory, 0)
	for _, entry := range r.entries {
		if entry.TicketID == ticketID {
			out = append(out, entry)
		}
	}
	return out, nil
}

type fakeNotificationRepo struct {
	mu            sync.Mutex
	seq           int
	notifications map[string]domain.Notification
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{notifications: map[string]domain.Notification{}}
}

func (r *fakeNotificationRepo) Create(_ context.Context, notification *domain.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	notification.ID = fmt.Sprintf("notification-%d", r.seq)
	r.notifications[notification.ID] = *notification
	return nil
}

func (r *fakeNotificationRepo) ListByUser(_ context.Context, userID string, limit, offset int) ([]domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Notification, 0)
	for i := r.seq; i >= 1; i-- {
		notification, ok := r.notifications[fmt.Sprintf("notification-%d", i)]
		if ok && notification.UserID == userID {
			out = append(out, notification)
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) MarkRead(_ context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	notification, ok := r.notifications[id]
	if !ok || notification.UserID != userID {
		return pgx.ErrNoRows
	}
	notification.Read = true
	r.notifications[id] = notification
	return nil
}

func (r *fakeNotificationRepo) MarkAllRead(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, notification := range r.notifications {
		if notification.UserID == userID {
			notification.Read = true
			r.notifications[id] = notification
		}
	}
	return nil
}

func (r *fakeNotificationRepo) CountUnread(_ context.Context, userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, notification := range r.notifications {
		if notification.UserID == userID && !notification.Read {
			count++
		}
	}
	return count, nil
}

type fakeBookmarkRepo struct {
	mu        sync.Mutex
	favorites map[string]map[string]bool
	recents   map[string][]string
}

func newFakeBookmarkRepo() *fakeBookmarkRepo {
	return &fakeBookmarkRepo{
		favorites: map[string]map[string]bool{},
		recents:   map[string][]string{},
	}
}

func (r *fakeBookmarkRepo) AddFavorite(_ context.Context, userID, ticketID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.favorites[userID] == nil {
		r.favorites[userID] = map[string]bool{}
	}
	r.favorites[userID][ticketID] = true
	return nil
}

func (r *fakeBookmarkRepo) RemoveFavorite(_ context.Context, userID, ticketID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.favorites[userID], ticketID)
	return nil
}

func (r *fakeBookmarkRepo) IsFavorite(_ context.Context, userID, ticketID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.favorites[userID][ticketID], nil
}

func (r *fakeBookmarkRepo) ListFavorites(_ context.Context, userID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.favorites[userID]))
	for ticketID := range r.favorites[userID] {
		out = append(out, ticketID)
	}
	return out, nil
}

func (r *fakeBookmarkRepo) PushRecent(_ context.Context, userID, ticketID string, limit int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	current := r.recents[userID]
	next := make([]string, 0, len(current)+1)
	next = append(next, ticketID)
	for _, id := range current {
		if id != ticketID {
			next = append(next, id)
		}
	}
	if limit > 0 && len(next) > limit {
		next = next[:limit]
	}
	r.recents[userID] = next
	return nil
}

func (r *fakeBookmarkRepo) ListRecent(_ context.Context, userID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.recents[userID]...), nil
}

type fakeDashboardRepo struct {
	total     int64
	byStatus  []domain.StatusCount
	byCompany []domain.CompanyCount
	monthly   []domain.MonthCount
	recent    []domain.Ticket

	lastRequesterID *string
}

func (r *fakeDashboardRepo) Total(_ context.Context, requesterID *string) (int64, error) {
	r.lastRequesterID = requesterID
	return r.total, nil
}

func (r *fakeDashboardRepo) CountByStatus(_ context.Context, requesterID *string) ([]domain.StatusCount, error) {
	return r.byStatus, nil
}

func (r *fakeDashboardRepo) CountByCompany(_ context.Context, requesterID *string) ([]domain.CompanyCount, error) {
	return r.byCompany, nil
}

func (r *fakeDashboardRepo) CountByMonth(_ context.Context, requesterID *string, months int) ([]domain.MonthCount, error) {
	return r.monthly, nil
}

func (r *fakeDashboardRepo) RecentTickets(_ context.Context, requesterID *string, limit int) ([]domain.Ticket, error) {
	return r.recent, nil
}

type recordingDispatcher struct {
	mu     sync.Mutex
	events []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (d *recordingDispatcher) byType(eventType events.EventType) []events.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]events.Event, 0)
	for _, event := range d.events {
		if event.Type == eventType {
			out = append(out, event)
		}
	}
	return out
}
