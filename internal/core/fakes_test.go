package core_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gptsolver-backend-go/internal/db"
	"gptsolver-backend-go/internal/models"
)

// fakeUserRepo is an in-memory db.UserRepository. Every write bumps the
// document version, and UpdateField honours the version precondition.
type fakeUserRepo struct {
	mu             sync.Mutex
	users          map[string]*models.User
	seq            int
	clock          time.Time
	updateFieldErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}, clock: time.Unix(1_700_000_000, 0)}
}

func (r *fakeUserRepo) tick() time.Time {
	r.clock = r.clock.Add(time.Millisecond)
	return r.clock
}

func (r *fakeUserRepo) put(user *models.User) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == "" {
		r.seq++
		user.ID = fmt.Sprintf("user-%d", r.seq)
	}
	stored := *user
	stored.Chats = append([]string{}, user.Chats...)
	stored.Version = r.tick()
	r.users[user.ID] = &stored
	return user.ID
}

func (r *fakeUserRepo) get(id string) *models.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil
	}
	cp := *u
	cp.Chats = append([]string{}, u.Chats...)
	return &cp
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) (string, error) {
	return r.put(user), nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, userID string) (*models.User, error) {
	if u := r.get(userID); u != nil {
		return u, nil
	}
	return nil, fmt.Errorf("user with ID '%s' not found: %w", userID, db.ErrNotFound)
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) ([]*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.User
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	if r.get(user.ID) == nil {
		return db.ErrNotFound
	}
	r.put(user)
	return nil
}

func (r *fakeUserRepo) UpdateField(_ context.Context, userID, field string, value interface{}, version time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateFieldErr != nil {
		return r.updateFieldErr
	}
	u, ok := r.users[userID]
	if !ok {
		return db.ErrNotFound
	}
	if !version.Equal(u.Version) {
		return db.ErrPreconditionFailed
	}
	switch field {
	case "totalTokens":
		u.TotalTokens = value.(int64)
	case "chats":
		u.Chats = append([]string{}, value.([]string)...)
	case "plan":
		u.Plan = value.(string)
	case "name":
		u.Name = value.(string)
	case "email":
		u.Email = value.(string)
	}
	u.Version = r.tick()
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[userID]; !ok {
		return db.ErrNotFound
	}
	delete(r.users, userID)
	return nil
}

// fakeChatRepo is an in-memory db.ChatRepository with injectable failures.
type fakeChatRepo struct {
	mu            sync.Mutex
	chats         map[string]*models.Chat
	messages      map[string][]*models.Message
	seq           int
	deleteErr     error
	addMessageErr error
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{chats: map[string]*models.Chat{}, messages: map[string][]*models.Message{}}
}

func (r *fakeChatRepo) Create(_ context.Context, chat *models.Chat) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	chat.ID = fmt.Sprintf("chat-%d", r.seq)
	cp := *chat
	r.chats[chat.ID] = &cp
	return chat.ID, nil
}

func (r *fakeChatRepo) GetByID(_ context.Context, chatID string) (*models.Chat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.chats[chatID]
	if !ok {
		return nil, fmt.Errorf("chat with ID '%s' not found: %w", chatID, db.ErrNotFound)
	}
	cp := *c
	return &cp, nil
}

func (r *fakeChatRepo) ListByOwnerID(_ context.Context, ownerID string) ([]*models.Chat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*models.Chat{}
	for i := 1; i <= r.seq; i++ {
		if c, ok := r.chats[fmt.Sprintf("chat-%d", i)]; ok && c.OwnerID == ownerID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeChatRepo) Delete(_ context.Context, chatID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.chats[chatID]; !ok {
		return fmt.Errorf("chat with ID '%s' not found for deletion: %w", chatID, db.ErrNotFound)
	}
	delete(r.messages, chatID)
	delete(r.chats, chatID)
	return nil
}

func (r *fakeChatRepo) AddMessage(_ context.Context, chatID string, message *models.Message) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.addMessageErr != nil {
		return "", r.addMessageErr
	}
	message.ID = fmt.Sprintf("msg-%d", len(r.messages[chatID])+1)
	message.ChatID = chatID
	cp := *message
	r.messages[chatID] = append(r.messages[chatID], &cp)
	return message.ID, nil
}

func (r *fakeChatRepo) ListMessages(_ context.Context, chatID string) ([]*models.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*models.Message{}, r.messages[chatID]...), nil
}

func (r *fakeChatRepo) exists(chatID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.chats[chatID]
	return ok
}

// recordingReconciler collects enqueued events.
type recordingReconciler struct {
	mu     sync.Mutex
	events []models.ReconciliationEvent
}

func (r *recordingReconciler) Enqueue(_ context.Context, event models.ReconciliationEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *recordingReconciler) Sweep(context.Context) (int, error) { return 0, nil }

func (r *recordingReconciler) recorded() []models.ReconciliationEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.ReconciliationEvent{}, r.events...)
}
