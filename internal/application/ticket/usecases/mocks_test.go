package usecases

import (
	"bytes"
	"context"
	"io"

	"novita/internal/domain/ticket"
	"novita/internal/domain/user"
	"novita/internal/shared/errors"
)

type mockTicketRepo struct {
	createFn           func(ctx context.Context, t *ticket.Ticket) error
	updateFn           func(ctx context.Context, t *ticket.Ticket) error
	getByIDFn          func(ctx context.Context, id uint) (*ticket.Ticket, error)
	getByTicketIDFn    func(ctx context.Context, ticketID string) (*ticket.Ticket, error)
	existsByTicketIDFn func(ctx context.Context, ticketID string) (bool, error)
	listFn             func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
}

func (m *mockTicketRepo) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.createFn != nil {
		return m.createFn(ctx, t)
	}
	return t.SetID(1)
}

func (m *mockTicketRepo) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, t)
	}
	return nil
}

func (m *mockTicketRepo) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, errors.NewNotFoundError("ticket not found")
}

func (m *mockTicketRepo) GetByTicketID(ctx context.Context, ticketID string) (*ticket.Ticket, error) {
	if m.getByTicketIDFn != nil {
		return m.getByTicketIDFn(ctx, ticketID)
	}
	return nil, errors.NewNotFoundError("ticket not found")
}

func (m *mockTicketRepo) ExistsByTicketID(ctx context.Context, ticketID string) (bool, error) {
	if m.existsByTicketIDFn != nil {
		return m.existsByTicketIDFn(ctx, ticketID)
	}
	return false, nil
}

func (m *mockTicketRepo) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, 0, nil
}

type mockResponseRepo struct {
	createFn       func(ctx context.Context, r *ticket.Response) error
	listByTicketFn func(ctx context.Context, ticketID uint) ([]*ticket.Response, error)
}

func (m *mockResponseRepo) Create(ctx context.Context, r *ticket.Response) error {
	if m.createFn != nil {
		return m.createFn(ctx, r)
	}
	return r.SetID(1)
}

func (m *mockResponseRepo) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Response, error) {
	if m.listByTicketFn != nil {
		return m.listByTicketFn(ctx, ticketID)
	}
	return nil, nil
}

type mockAttachmentRepo struct {
	createFn       func(ctx context.Context, a *ticket.Attachment) error
	getByIDFn      func(ctx context.Context, id uint) (*ticket.Attachment, error)
	listByTicketFn func(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error)
}

func (m *mockAttachmentRepo) Create(ctx context.Context, a *ticket.Attachment) error {
	if m.createFn != nil {
		return m.createFn(ctx, a)
	}
	return a.SetID(1)
}

func (m *mockAttachmentRepo) GetByID(ctx context.Context, id uint) (*ticket.Attachment, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, errors.NewNotFoundError("attachment not found")
}

func (m *mockAttachmentRepo) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	if m.listByTicketFn != nil {
		return m.listByTicketFn(ctx, ticketID)
	}
	return nil, nil
}

type mockUserRepo struct {
	createFn        func(ctx context.Context, u *user.User) error
	getByIDFn       func(ctx context.Context, id uint) (*user.User, error)
	getByEmailFn    func(ctx context.Context, email string) (*user.User, error)
	existsByEmailFn func(ctx context.Context, email string) (bool, error)
	updateFn        func(ctx context.Context, u *user.User) error
}

func (m *mockUserRepo) Create(ctx context.Context, u *user.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, u)
	}
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, errors.NewNotFoundError("user not found")
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, errors.NewNotFoundError("user not found")
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.existsByEmailFn != nil {
		return m.existsByEmailFn(ctx, email)
	}
	return false, nil
}

func (m *mockUserRepo) Update(ctx context.Context, u *user.User) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, u)
	}
	return nil
}

type mockStorage struct {
	saveFn   func(ctx context.Context, key string, r io.Reader) error
	openFn   func(ctx context.Context, key string) (io.ReadCloser, error)
	deleteFn func(ctx context.Context, key string) error
	saved    map[string][]byte
}

func newMockStorage() *mockStorage {
	return &mockStorage{saved: make(map[string][]byte)}
}

func (m *mockStorage) Save(ctx context.Context, key string, r io.Reader) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, key, r)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.saved[key] = data
	return nil
}

func (m *mockStorage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if m.openFn != nil {
		return m.openFn(ctx, key)
	}
	data, ok := m.saved[key]
	if !ok {
		return nil, errors.NewNotFoundError("file not found")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *mockStorage) Delete(ctx context.Context, key string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, key)
	}
	delete(m.saved, key)
	return nil
}

type mockNotifier struct {
	notifyFn func(ctx context.Context, to, ticketID, subject string) error
	sent     []string
}

func (m *mockNotifier) NotifyTicketResponse(ctx context.Context, to, ticketID, subject string) error {
	if m.notifyFn != nil {
		return m.notifyFn(ctx, to, ticketID, subject)
	}
	m.sent = append(m.sent, to)
	return nil
}

type mockIDGenerator struct {
	generateFn func() (string, error)
}

func (m *mockIDGenerator) Generate() (string, error) {
	if m.generateFn != nil {
		return m.generateFn()
	}
	return "TK12345678", nil
}
