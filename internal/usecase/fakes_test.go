package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"pawmatch/internal/domain/entity"
	"pawmatch/pkg/errors"
)

// In-memory repository fakes backing the use case tests. They mirror the
// Firestore adapters' observable behavior: generated ids, NOT_FOUND and
// CONFLICT app errors, pair key uniqueness on match creation.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
		user.UpdatedAt = now
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return errors.NotFound("User", nil)
	}
	for id, other := range r.users {
		if id != user.ID && other.Email == user.Email {
			return errors.Conflict("Email already in use")
		}
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) UpdateFCMToken(ctx context.Context, id, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return errors.NotFound("User", nil)
	}
	user.FCMToken = token
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return errors.NotFound("User", nil)
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) List(ctx context.Context) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := make([]*entity.User, 0, len(r.users))
	for _, user := range r.users {
		clone := *user
		users = append(users, &clone)
	}
	return users, nil
}

type fakeDogRepo struct {
	mu   sync.Mutex
	dogs map[string]*entity.Dog
	seq  int
}

func newFakeDogRepo() *fakeDogRepo {
	return &fakeDogRepo{dogs: map[string]*entity.Dog{}}
}

func (r *fakeDogRepo) Create(ctx context.Context, dog *entity.Dog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	dog.ID = fmt.Sprintf("dog-%d", r.seq)
	now := time.Now()
	dog.CreatedAt = now
	dog.UpdatedAt = now
	clone := *dog
	r.dogs[dog.ID] = &clone
	return nil
}

func (r *fakeDogRepo) GetByID(ctx context.Context, id string) (*entity.Dog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	dog, ok := r.dogs[id]
	if !ok {
		return nil, errors.NotFound("Dog", nil)
	}
	clone := *dog
	return &clone, nil
}

func (r *fakeDogRepo) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Dog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	dogs := make([]*entity.Dog, 0)
	for _, dog := range r.dogs {
		if dog.OwnerID == ownerID {
			clone := *dog
			dogs = append(dogs, &clone)
		}
	}
	return dogs, nil
}

func (r *fakeDogRepo) List(ctx context.Context) ([]*entity.Dog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	dogs := make([]*entity.Dog, 0, len(r.dogs))
	for _, dog := range r.dogs {
		clone := *dog
		dogs = append(dogs, &clone)
	}
	return dogs, nil
}

func (r *fakeDogRepo) Update(ctx context.Context, dog *entity.Dog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.dogs[dog.ID]; !ok {
		return errors.NotFound("Dog", nil)
	}
	dog.UpdatedAt = time.Now()
	clone := *dog
	r.dogs[dog.ID] = &clone
	return nil
}

func (r *fakeDogRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.dogs[id]; !ok {
		return errors.NotFound("Dog", nil)
	}
	delete(r.dogs, id)
	return nil
}

type fakeMatchRepo struct {
	mu      sync.Mutex
	matches map[string]*entity.Match
	seq     int
}

func newFakeMatchRepo() *fakeMatchRepo {
	return &fakeMatchRepo{matches: map[string]*entity.Match{}}
}

func (r *fakeMatchRepo) Create(ctx context.Context, match *entity.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	match.PairKey = entity.PairKey(match.Dog1ID, match.Dog2ID)
	for _, existing := range r.matches {
		if existing.PairKey == match.PairKey {
			return errors.Conflict("A match between these dogs already exists")
		}
	}
	r.seq++
	match.ID = fmt.Sprintf("match-%d", r.seq)
	now := time.Now()
	match.CreatedAt = now
	match.UpdatedAt = now
	clone := *match
	r.matches[match.ID] = &clone
	return nil
}

func (r *fakeMatchRepo) GetByID(ctx context.Context, id string) (*entity.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	match, ok := r.matches[id]
	if !ok {
		return nil, errors.NotFound("Match", nil)
	}
	clone := *match
	return &clone, nil
}

func (r *fakeMatchRepo) UpdateStatus(ctx context.Context, id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	match, ok := r.matches[id]
	if !ok {
		return errors.NotFound("Match", nil)
	}
	match.Status = status
	match.UpdatedAt = time.Now()
	return nil
}

func (r *fakeMatchRepo) ListByDogIDs(ctx context.Context, dogIDs []string) ([]*entity.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	matches := make([]*entity.Match, 0)
	for _, match := range r.matches {
		for _, dogID := range dogIDs {
			if match.Dog1ID == dogID {
				clone := *match
				matches = append(matches, &clone)
			}
		}
	}
	for _, match := range r.matches {
		for _, dogID := range dogIDs {
			if match.Dog2ID == dogID {
				clone := *match
				matches = append(matches, &clone)
			}
		}
	}
	return matches, nil
}

type fakeMessageRepo struct {
	mu       sync.Mutex
	messages map[string]*entity.Message
	order    []string
	seq      int
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{messages: map[string]*entity.Message{}}
}

func (r *fakeMessageRepo) Create(ctx context.Context, message *entity.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	message.ID = fmt.Sprintf("message-%d", r.seq)
	message.CreatedAt = time.Now()
	clone := *message
	r.messages[message.ID] = &clone
	r.order = append(r.order, message.ID)
	return nil
}

func (r *fakeMessageRepo) GetByID(ctx context.Context, id string) (*entity.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	message, ok := r.messages[id]
	if !ok {
		return nil, errors.NotFound("Message", nil)
	}
	clone := *message
	return &clone, nil
}

func (r *fakeMessageRepo) ListByMatch(ctx context.Context, matchID string) ([]*entity.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	messages := make([]*entity.Message, 0)
	for _, id := range r.order {
		if r.messages[id].MatchID == matchID {
			clone := *r.messages[id]
			messages = append(messages, &clone)
		}
	}
	return messages, nil
}

func (r *fakeMessageRepo) MarkRead(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	message, ok := r.messages[id]
	if !ok {
		return errors.NotFound("Message", nil)
	}
	now := time.Now()
	message.ReadAt = &now
	return nil
}

type fakeNotificationRepo struct {
	mu            sync.Mutex
	notifications map[string]*entity.Notification
	order         []string
	seq           int
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{notifications: map[string]*entity.Notification{}}
}

func (r *fakeNotificationRepo) Create(ctx context.Context, notification *entity.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	notification.ID = fmt.Sprintf("notification-%d", r.seq)
	notification.CreatedAt = time.Now()
	clone := *notification
	r.notifications[notification.ID] = &clone
	r.order = append(r.order, notification.ID)
	return nil
}

func (r *fakeNotificationRepo) GetByID(ctx context.Context, id string) (*entity.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	notification, ok := r.notifications[id]
	if !ok {
		return nil, errors.NotFound("Notification", nil)
	}
	clone := *notification
	return &clone, nil
}

func (r *fakeNotificationRepo) ListByUser(ctx context.Context, userID string, unreadOnly bool) ([]*entity.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	notifications := make([]*entity.Notification, 0)
	for _, id := range r.order {
		notification := r.notifications[id]
		if notification.UserID != userID {
			continue
		}
		if unreadOnly && notification.ReadAt != nil {
			continue
		}
		clone := *notification
		notifications = append(notifications, &clone)
	}
	return notifications, nil
}

func (r *fakeNotificationRepo) CountUnread(ctx context.Context, userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, notification := range r.notifications {
		if notification.UserID == userID && notification.ReadAt == nil {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) MarkRead(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	notification, ok := r.notifications[id]
	if !ok {
		return errors.NotFound("Notification", nil)
	}
	now := time.Now()
	notification.ReadAt = &now
	return nil
}

func (r *fakeNotificationRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.notifications[id]; !ok {
		return errors.NotFound("Notification", nil)
	}
	delete(r.notifications, id)
	for i, orderedID := range r.order {
		if orderedID == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// fakeAuth satisfies FirebaseAuthClient with canned answers.
type fakeAuth struct {
	mu           sync.Mutex
	nextUID      string
	createErr    error
	signInErr    error
	created      []string
	updated      []string
	deleted      []string
	tokenToUID   map[string]string
	signInTokens map[string]string
}

func newFakeAuth() *fakeAuth {
	return &fakeAuth{
		tokenToUID:   map[string]string{},
		signInTokens: map[string]string{},
	}
}

func (a *fakeAuth) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.createErr != nil {
		return "", a.createErr
	}
	a.created = append(a.created, email)
	return a.nextUID, nil
}

func (a *fakeAuth) VerifyToken(ctx context.Context, token string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	uid, ok := a.tokenToUID[token]
	if !ok {
		return "", errors.Unauthorized("Invalid token", nil)
	}
	return uid, nil
}

func (a *fakeAuth) SignInWithEmailPassword(ctx context.Context, email, password string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.signInErr != nil {
		return "", a.signInErr
	}
	token, ok := a.signInTokens[email]
	if !ok {
		return "", errors.Unauthorized("Invalid credentials", nil)
	}
	return token, nil
}

func (a *fakeAuth) UpdateUser(ctx context.Context, uid, email, displayName string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.updated = append(a.updated, uid)
	return nil
}

func (a *fakeAuth) DeleteUser(ctx context.Context, uid string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.deleted = append(a.deleted, uid)
	return nil
}

type sentNotification struct {
	UserID string
	Type   string
	Title  string
	Body   string
	Data   map[string]string
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []sentNotification
}

func (n *fakeNotifier) Notify(ctx context.Context, userID, notificationType, title, body string, data map[string]string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, sentNotification{
		UserID: userID,
		Type:   notificationType,
		Title:  title,
		Body:   body,
		Data:   data,
	})
}

type broadcastCall struct {
	RoomID string
	Event  string
	Data   interface{}
}

type fakeBroadcaster struct {
	mu    sync.Mutex
	calls []broadcastCall
}

func (b *fakeBroadcaster) BroadcastToRoom(roomID string, event string, data interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, broadcastCall{RoomID: roomID, Event: event, Data: data})
}

type pushCall struct {
	Token string
	Title string
	Body  string
}

type fakePush struct {
	mu    sync.Mutex
	calls []pushCall
}

func (p *fakePush) Send(ctx context.Context, token, title, body string, data map[string]string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, pushCall{Token: token, Title: title, Body: body})
}
