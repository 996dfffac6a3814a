package user

import (
	"context"
	"database/sql"
	"strings"

	"github.com/saxena100parth/codriva-hrms-sub002/internal/shared/connection"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Filter struct {
	Role             string
	Status           string
	OnboardingStatus string
	Q                string
}

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByIDForUpdate(ctx context.Context, id string) (*User, error)
	FindByMobile(ctx context.Context, mobile string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmailOrMobile(ctx context.Context, email, mobile string) (bool, error)
	EmailInUse(ctx context.Context, email, excludeID string) (bool, error)
	FindAll(ctx context.Context, filter Filter) ([]User, error)
	FindActiveByNameLike(ctx context.Context, name string) ([]User, error)
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return connection.Conn(ctx, r.db, r.tx)
}

func (r *repository) Create(ctx context.Context, u *User) error {
	return r.conn(ctx).Create(u).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := r.conn(ctx).First(&u, "id = ?", id).Error
	return &u, err
}

func (r *repository) FindByIDForUpdate(ctx context.Context, id string) (*User, error) {
	var u User
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&u, "id = ?", id).Error
	return &u, err
}

func (r *repository) FindByMobile(ctx context.Context, mobile string) (*User, error) {
	var u User
	err := r.conn(ctx).First(&u, "mobile_number = ?", strings.TrimSpace(mobile)).Error
	return &u, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.conn(ctx).First(&u, "official_email = ?", strings.ToLower(strings.TrimSpace(email))).Error
	return &u, err
}

func (r *repository) ExistsByEmailOrMobile(ctx context.Context, email, mobile string) (bool, error) {
	db := r.conn(ctx).Model(&User{})
	email = strings.ToLower(strings.TrimSpace(email))
	if email != "" {
		db = db.Where("official_email = ? OR mobile_number = ?", email, mobile)
	} else {
		db = db.Where("mobile_number = ?", mobile)
	}

	var count int64
	err := db.Count(&count).Error
	return count > 0, err
}

func (r *repository) EmailInUse(ctx context.Context, email, excludeID string) (bool, error) {
	db := r.conn(ctx).
		Model(&User{}).
		Where("official_email = ?", strings.ToLower(strings.TrimSpace(email)))
	if excludeID != "" {
		db = db.Where("id <> ?", excludeID)
	}

	var count int64
	err := db.Count(&count).Error
	return count > 0, err
}

func (r *repository) FindAll(ctx context.Context, filter Filter) ([]User, error) {
	db := r.conn(ctx).Model(&User{})
	if filter.Role != "" {
		db = db.Where("role = ?", filter.Role)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.OnboardingStatus != "" {
		db = db.Where("onboarding_status = ?", filter.OnboardingStatus)
	}
	if q := strings.TrimSpace(filter.Q); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		db = db.Where(
			"LOWER(name) LIKE ? OR LOWER(COALESCE(official_email, '')) LIKE ? OR LOWER(personal_email) LIKE ? OR mobile_number LIKE ?",
			like, like, like, like,
		)
	}

	var users []User
	err := db.Order("created_at DESC").Find(&users).Error
	return users, err
}

// FindActiveByNameLike: case-insensitive partial match terhadap user ACTIVE.
func (r *repository) FindActiveByNameLike(ctx context.Context, name string) ([]User, error) {
	var users []User
	err := r.conn(ctx).
		Where("status = ?", StatusActive).
		Where("role IN ?", []string{RoleEmployee, RoleHR, RoleAdmin}).
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(strings.TrimSpace(name))+"%").
		Limit(5).
		Find(&users).Error
	return users, err
}

func (r *repository) Update(ctx context.Context, u *User) error {
	return r.conn(ctx).Save(u).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.conn(ctx).Delete(&User{}, "id = ?", id).Error
}
