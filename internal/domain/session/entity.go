package session

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyUserWallet   = errors.New("user wallet cannot be empty")
	ErrNilResourceID     = errors.New("resource id is required")
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

// Session is a single pay-per-use transaction instance against one
// resource for one paying wallet. The amount is a monetary snapshot of
// the resource price at open time, never recomputed afterwards.
type Session struct {
	id         uuid.UUID
	resourceID uuid.UUID
	userWallet string
	amount     int64
	status     Status
	createdAt  time.Time
}

func NewSession(resourceID uuid.UUID, userWallet string, amount int64, now time.Time) (*Session, error) {
	if resourceID == uuid.Nil {
		return nil, ErrNilResourceID
	}
	if strings.TrimSpace(userWallet) == "" {
		return nil, ErrEmptyUserWallet
	}
	if amount <= 0 {
		return nil, ErrNonPositiveAmount
	}

	return &Session{
		id:         uuid.New(),
		resourceID: resourceID,
		userWallet: strings.TrimSpace(userWallet),
		amount:     amount,
		status:     StatusPending,
		createdAt:  now,
	}, nil
}

// MarkPaid applies the pending→paid transition. The status is monotonic:
// marking an already paid session again is a no-op, not an error.
func (s *Session) MarkPaid() {
	s.status = StatusPaid
}

func (s *Session) IsPaid() bool { return s.status == StatusPaid }

func (s *Session) ID() uuid.UUID         { return s.id }
func (s *Session) ResourceID() uuid.UUID { return s.resourceID }
func (s *Session) UserWallet() string    { return s.userWallet }
func (s *Session) Amount() int64         { return s.amount }
func (s *Session) Status() Status        { return s.status }
func (s *Session) CreatedAt() time.Time  { return s.createdAt }
