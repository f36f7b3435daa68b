package databases

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/vowlink/wedding-invites-api/models"
)

// MemoryStore backs the degraded mode: when mongo is unreachable at startup
// the API keeps serving against these process-local maps. Everything is lost
// on restart, which is the documented trade-off.
//
// The slug and email uniqueness guarantees of the mongo indexes are enforced
// here under a single mutex, so the retry contract of InvitationDatabase
// holds in both modes.
type MemoryStore struct {
	mu sync.RWMutex

	users             map[string]models.User
	usersByEmail      map[string]string
	sessions          map[string]models.Session
	templates         map[string]models.Template
	templateOrder     []string
	invitations       map[string]models.Invitation
	invitationsBySlug map[string]string
	payments          map[string]models.PaymentTransaction
	paymentsBySession map[string]string
}

// NewMemoryStore returns an empty volatile store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:             map[string]models.User{},
		usersByEmail:      map[string]string{},
		sessions:          map[string]models.Session{},
		templates:         map[string]models.Template{},
		invitations:       map[string]models.Invitation{},
		invitationsBySlug: map[string]string{},
		payments:          map[string]models.PaymentTransaction{},
		paymentsBySession: map[string]string{},
	}
}

// Invitations returns the in-memory InvitationDatabase.
func (m *MemoryStore) Invitations() InvitationDatabase { return &memInvitations{s: m} }

// Templates returns the in-memory TemplateDatabase.
func (m *MemoryStore) Templates() TemplateDatabase { return &memTemplates{s: m} }

// Users returns the in-memory UserDatabase.
func (m *MemoryStore) Users() UserDatabase { return &memUsers{s: m} }

// Sessions returns the in-memory SessionDatabase.
func (m *MemoryStore) Sessions() SessionDatabase { return &memSessions{s: m} }

// Payments returns the in-memory PaymentDatabase.
func (m *MemoryStore) Payments() PaymentDatabase { return &memPayments{s: m} }

type memInvitations struct{ s *MemoryStore }

func (d *memInvitations) InsertOne(_ context.Context, invitation models.Invitation) error {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()
	if _, taken := d.s.invitationsBySlug[invitation.URLSlug]; taken {
		return ErrDuplicateSlug
	}
	d.s.invitations[invitation.ID] = invitation
	d.s.invitationsBySlug[invitation.URLSlug] = invitation.ID
	return nil
}

func (d *memInvitations) FindByID(_ context.Context, id string) (*models.Invitation, error) {
	d.s.mu.RLock()
	defer d.s.mu.RUnlock()
	inv, ok := d.s.invitations[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &inv, nil
}

func (d *memInvitations) FindBySlug(_ context.Context, slug string) (*models.Invitation, error) {
	d.s.mu.RLock()
	defer d.s.mu.RUnlock()
	id, ok := d.s.invitationsBySlug[slug]
	if !ok {
		return nil, ErrNotFound
	}
	inv := d.s.invitations[id]
	return &inv, nil
}

func (d *memInvitations) FindPublishedBySlug(ctx context.Context, slug string) (*models.Invitation, error) {
	inv, err := d.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !inv.IsPublished {
		return nil, ErrNotFound
	}
	return inv, nil
}

func (d *memInvitations) FindByUserID(_ context.Context, userID string) ([]models.Invitation, error) {
	d.s.mu.RLock()
	defer d.s.mu.RUnlock()
	out := []models.Invitation{}
	for _, inv := range d.s.invitations {
		if inv.UserID == userID {
			out = append(out, inv)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (d *memInvitations) CountDocuments(_ context.Context) (int64, error) {
	d.s.mu.RLock()
	defer d.s.mu.RUnlock()
	return int64(len(d.s.invitations)), nil
}

func (d *memInvitations) EnsureIndexes(context.Context) error { return nil }

type memTemplates struct{ s *MemoryStore }

func (d *memTemplates) InsertOne(_ context.Context, template models.Template) error {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()
	if _, exists := d.s.templates[template.ID]; !exists {
		d.s.templateOrder = append(d.s.templateOrder, template.ID)
	}
	d.s.templates[template.ID] = template
	return nil
}

func (d *memTemplates) InsertMany(ctx context.Context, templates []models.Template) error {
	for _, t := range templates {
		if err := d.InsertOne(ctx, t); err != nil {
			return err
		}
	}
	return nil
}

func (d *memTemplates) FindByID(_ context.Context, id string) (*models.Template, error) {
	d.s.mu.RLock()
	defer d.s.mu.RUnlock()
	t, ok := d.s.templates[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &t, nil
}

func (d *memTemplates) FindAll(_ context.Context) ([]models.Template, error) {
	d.s.mu.RLock()
	defer d.s.mu.RUnlock()
	out := make([]models.Template, 0, len(d.s.templateOrder))
	for _, id := range d.s.templateOrder {
		out = append(out, d.s.templates[id])
	}
	return out, nil
}

func (d *memTemplates) CountDocuments(_ context.Context) (int64, error) {
	d.s.mu.RLock()
	defer d.s.mu.RUnlock()
	return int64(len(d.s.templates)), nil
}

type memUsers struct{ s *MemoryStore }

func (d *memUsers) InsertOne(_ context.Context, user models.User) error {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()
	if _, taken := d.s.usersByEmail[user.Email]; taken {
		return ErrDuplicateEmail
	}
	d.s.users[user.ID] = user
	d.s.usersByEmail[user.Email] = user.ID
	return nil
}

func (d *memUsers) FindByID(_ context.Context, id string) (*models.User, error) {
	d.s.mu.RLock()
	defer d.s.mu.RUnlock()
	u, ok := d.s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (d *memUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	d.s.mu.RLock()
	defer d.s.mu.RUnlock()
	id, ok := d.s.usersByEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	u := d.s.users[id]
	return &u, nil
}

func (d *memUsers) SetPremium(_ context.Context, id string, premium bool) error {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()
	u, ok := d.s.users[id]
	if !ok {
		return ErrNotFound
	}
	u.IsPremium = premium
	d.s.users[id] = u
	return nil
}

func (d *memUsers) CountDocuments(_ context.Context) (int64, error) {
	d.s.mu.RLock()
	defer d.s.mu.RUnlock()
	return int64(len(d.s.users)), nil
}

func (d *memUsers) EnsureIndexes(context.Context) error { return nil }

type memSessions struct{ s *MemoryStore }

func (d *memSessions) InsertOne(_ context.Context, session models.Session) error {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()
	d.s.sessions[session.Token] = session
	return nil
}

func (d *memSessions) FindByToken(_ context.Context, token string) (*models.Session, error) {
	d.s.mu.RLock()
	defer d.s.mu.RUnlock()
	sess, ok := d.s.sessions[token]
	if !ok {
		return nil, ErrNotFound
	}
	return &sess, nil
}

func (d *memSessions) DeleteByToken(_ context.Context, token string) error {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()
	delete(d.s.sessions, token)
	return nil
}

func (d *memSessions) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()
	var n int64
	for token, sess := range d.s.sessions {
		if sess.Expired(now) {
			delete(d.s.sessions, token)
			n++
		}
	}
	return n, nil
}

type memPayments struct{ s *MemoryStore }

func (d *memPayments) InsertOne(_ context.Context, tx models.PaymentTransaction) error {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()
	d.s.payments[tx.ID] = tx
	d.s.paymentsBySession[tx.SessionID] = tx.ID
	return nil
}

func (d *memPayments) FindBySessionID(_ context.Context, sessionID string) (*models.PaymentTransaction, error) {
	d.s.mu.RLock()
	defer d.s.mu.RUnlock()
	id, ok := d.s.paymentsBySession[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	tx := d.s.payments[id]
	return &tx, nil
}

func (d *memPayments) UpdateStatus(_ context.Context, sessionID, status string) error {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()
	id, ok := d.s.paymentsBySession[sessionID]
	if !ok {
		return ErrNotFound
	}
	tx := d.s.payments[id]
	tx.PaymentStatus = status
	tx.UpdatedAt = time.Now().UTC()
	d.s.payments[id] = tx
	return nil
}
