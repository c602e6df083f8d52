package identity

import (
	"context"
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"
)

// ErrDuplicateEmail is returned by Create when the email is taken.
var ErrDuplicateEmail = errors.New("email already registered")

// Credential is one registered login.
type Credential struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	Email        string `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for the Credential model.
func (Credential) TableName() string {
	return "credentials"
}

// CredentialStore persists registered logins.
type CredentialStore interface {
	// Create inserts a credential; ErrDuplicateEmail when the email is
	// already registered.
	Create(ctx context.Context, cred *Credential) error

	// GetByEmail returns the credential, (nil, nil) when unregistered.
	GetByEmail(ctx context.Context, email string) (*Credential, error)
}

type gormCredentials struct {
	db *gorm.DB
}

// NewGormCredentials creates a Postgres-backed CredentialStore.
func NewGormCredentials(db *gorm.DB) CredentialStore {
	return &gormCredentials{db: db}
}

// MigrateCredentials creates the credentials table.
func MigrateCredentials(db *gorm.DB) error {
	return db.AutoMigrate(&Credential{})
}

func (r *gormCredentials) Create(ctx context.Context, cred *Credential) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&Credential{}).
		Where("email = ?", cred.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateEmail
	}
	return r.db.WithContext(ctx).Create(cred).Error
}

func (r *gormCredentials) GetByEmail(ctx context.Context, email string) (*Credential, error) {
	var cred Credential
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&cred).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cred, nil
}

// MemoryCredentials is an in-memory CredentialStore for tests and the CLI.
type MemoryCredentials struct {
	mu    sync.RWMutex
	creds map[string]*Credential
}

// NewMemoryCredentials creates an empty MemoryCredentials.
func NewMemoryCredentials() *MemoryCredentials {
	return &MemoryCredentials{creds: make(map[string]*Credential)}
}

func (r *MemoryCredentials) Create(_ context.Context, cred *Credential) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.creds[cred.Email]; ok {
		return ErrDuplicateEmail
	}
	copied := *cred
	r.creds[cred.Email] = &copied
	return nil
}

func (r *MemoryCredentials) GetByEmail(_ context.Context, email string) (*Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cred, ok := r.creds[email]
	if !ok {
		return nil, nil
	}
	copied := *cred
	return &copied, nil
}
