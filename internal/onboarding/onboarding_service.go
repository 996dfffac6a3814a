package onboarding

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/saxena100parth/codriva-hrms-sub002/internal/bootstrap"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/notification"
	onboardingerrors "github.com/saxena100parth/codriva-hrms-sub002/internal/onboarding/errors"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/otp"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/shared/counter"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/shared/password"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/shared/token"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/user"
	usererrors "github.com/saxena100parth/codriva-hrms-sub002/internal/user/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const employeeIDFormat = "EMP%05d"

//go:generate mockgen -source=onboarding_service.go -destination=mock/onboarding_service_mock.go -package=mock
type Service interface {
	Invite(ctx context.Context, actorID string, req InviteRequest) (InviteResponse, error)
	ResendInvitation(ctx context.Context, actorID, id string) (InviteResponse, error)
	RequestOTP(ctx context.Context, mobile string) (OTPResponse, error)
	ResendOTP(ctx context.Context, mobile string) (OTPResponse, error)
	VerifyOTP(ctx context.Context, req VerifyOTPRequest) (VerifyOTPResponse, error)
	Submit(ctx context.Context, personID string, req SubmitRequest) (MessageResponse, error)
	Review(ctx context.Context, actorID, id string, req ReviewRequest) (ReviewResponse, error)
	Complete(ctx context.Context, personID string) (MessageResponse, error)
	GetStatus(ctx context.Context, personID string) (StatusResponse, error)
	List(ctx context.Context, onboardingStatus string) ([]user.UserResponse, error)
}

type Config struct {
	InviteTTL           time.Duration
	FrontendURL         string
	HRNotificationEmail string
	// CompleteOnNotifyFailure: true = tetap promosi ke COMPLETED walau email approval gagal.
	CompleteOnNotifyFailure bool
	BcryptCost              int
	TempPasswordLength      int
}

// Notifiers memisahkan jalur antrean (outbox) dan jalur langsung yang ditunggu.
// Direct boleh nil (SMTP tidak dikonfigurasi); email yang membawa kredensial
// tidak pernah dialihkan ke Queued.
type Notifiers struct {
	Queued notification.Notifier
	Direct notification.Notifier
}

type service struct {
	db        *sql.DB
	users     user.Repository
	counters  counter.Repository
	otps      otp.Service
	tokens    *token.Issuer
	notifiers Notifiers
	audit     bootstrap.AuditLogger
	validate  *validator.Validate
	cfg       Config
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	users user.Repository,
	counters counter.Repository,
	otps otp.Service,
	tokens *token.Issuer,
	notifiers Notifiers,
	audit bootstrap.AuditLogger,
	cfg Config,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("onboarding.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("onboarding.service")
	}
	if cfg.InviteTTL <= 0 {
		cfg.InviteTTL = 7 * 24 * time.Hour
	}
	if cfg.TempPasswordLength <= 0 {
		cfg.TempPasswordLength = 12
	}
	if audit == nil {
		audit = bootstrap.NewStdoutAuditLogger(l)
	}
	return &service{
		db:        db,
		users:     users,
		counters:  counters,
		otps:      otps,
		tokens:    tokens,
		notifiers: notifiers,
		audit:     audit,
		validate:  validator.New(),
		cfg:       cfg,
		now:       time.Now,
		logger:    l,
	}
}

func (s *service) Invite(ctx context.Context, actorID string, req InviteRequest) (InviteResponse, error) {
	mobile := strings.TrimSpace(req.PhoneNumber)
	s.logger.Debug("invite requested", zap.String("actor_id", actorID), zap.String("mobile_number", mobile))

	inviterID, err := uuid.Parse(actorID)
	if err != nil {
		return InviteResponse{}, onboardingerrors.ErrInvalidUserID
	}

	role := req.Role
	if role == "" {
		role = user.RoleEmployee
	}
	if !user.IsValidRole(role) {
		return InviteResponse{}, onboardingerrors.ErrInvalidRole
	}

	now := s.now()
	expiry := now.Add(s.cfg.InviteTTL)
	if req.InviteExpiryTime != nil {
		if !req.InviteExpiryTime.After(now) {
			return InviteResponse{}, onboardingerrors.ErrInvalidInviteExpiry
		}
		expiry = *req.InviteExpiryTime
	}

	email := ""
	if req.Email != nil {
		email = strings.ToLower(strings.TrimSpace(*req.Email))
	}

	exists, err := s.users.ExistsByEmailOrMobile(ctx, email, mobile)
	if err != nil {
		s.logger.Error("invite duplicate check failed", zap.Error(err))
		return InviteResponse{}, err
	}
	if exists {
		s.logger.Warn("invite duplicate identity", zap.String("mobile_number", mobile))
		return InviteResponse{}, onboardingerrors.ErrDuplicateIdentity
	}

	invitationToken := newInvitationToken()
	u := &user.User{
		ID:               uuid.New(),
		Name:             strings.TrimSpace(req.Name),
		PersonalEmail:    strings.ToLower(strings.TrimSpace(req.PersonalEmail)),
		MobileNumber:     mobile,
		Role:             role,
		Status:           user.StatusDraft,
		OnboardingStatus: user.OnboardingInvited,
		InvitationToken:  &invitationToken,
		InviteExpiryTime: &expiry,
		InvitedBy:        &inviterID,
		Department:       req.Department,
		JobTitle:         req.JobTitle,
	}
	if email != "" {
		u.SetOfficialEmail(email)
		if _, err := s.issueTemporaryPassword(u); err != nil {
			s.logger.Error("invite temporary password failed", zap.Error(err))
			return InviteResponse{}, err
		}
	}
	if err := u.Validate(); err != nil {
		return InviteResponse{}, err
	}

	if err := s.users.Create(ctx, u); err != nil {
		mapped := user.MapRepositoryError(err)
		if errors.Is(mapped, usererrors.ErrEmailInUse) || errors.Is(mapped, usererrors.ErrMobileInUse) {
			s.logger.Warn("invite duplicate identity on insert", zap.String("mobile_number", mobile))
			return InviteResponse{}, onboardingerrors.ErrDuplicateIdentity
		}
		s.logger.Error("invite persist failed", zap.Error(err))
		return InviteResponse{}, mapped
	}

	invitationURL := s.invitationURL(u)
	s.notifyQueued(ctx, notification.Message{
		To:       u.PersonalEmail,
		Template: notification.TemplateInvitation,
		Data: map[string]string{
			"name":           u.Name,
			"invitation_url": invitationURL,
			"expires_at":     expiry.UTC().Format(time.RFC1123),
		},
	})

	s.logger.Info("invite success", zap.String("user_id", u.ID.String()), zap.String("actor_id", actorID))
	return InviteResponse{
		InvitationURL: invitationURL,
		Message:       "Invitation sent to " + u.PersonalEmail,
		User:          user.ToResponse(*u),
	}, nil
}

func (s *service) ResendInvitation(ctx context.Context, actorID, id string) (InviteResponse, error) {
	s.logger.Debug("resend invitation requested", zap.String("actor_id", actorID), zap.String("user_id", id))

	u, err := s.mutate(ctx, "resend invitation", id, func(u *user.User) error {
		if u.OnboardingStatus != user.OnboardingInvited {
			return onboardingerrors.ErrNotInvited
		}
		invitationToken := newInvitationToken()
		expiry := s.now().Add(s.cfg.InviteTTL)
		u.InvitationToken = &invitationToken
		u.InviteExpiryTime = &expiry
		return nil
	})
	if err != nil {
		return InviteResponse{}, err
	}

	invitationURL := s.invitationURL(u)
	s.notifyQueued(ctx, notification.Message{
		To:       u.PersonalEmail,
		Template: notification.TemplateInvitation,
		Data: map[string]string{
			"name":           u.Name,
			"invitation_url": invitationURL,
			"expires_at":     u.InviteExpiryTime.UTC().Format(time.RFC1123),
		},
	})

	return InviteResponse{
		InvitationURL: invitationURL,
		Message:       "Invitation resent to " + u.PersonalEmail,
		User:          user.ToResponse(*u),
	}, nil
}

func (s *service) RequestOTP(ctx context.Context, mobile string) (OTPResponse, error) {
	res, err := s.otps.Issue(ctx, strings.TrimSpace(mobile))
	if err != nil {
		return OTPResponse{}, err
	}
	return toOTPResponse(res, "OTP sent to your registered email"), nil
}

func (s *service) ResendOTP(ctx context.Context, mobile string) (OTPResponse, error) {
	res, err := s.otps.Resend(ctx, strings.TrimSpace(mobile))
	if err != nil {
		return OTPResponse{}, err
	}
	return toOTPResponse(res, "A new OTP has been sent to your registered email"), nil
}

func (s *service) VerifyOTP(ctx context.Context, req VerifyOTPRequest) (VerifyOTPResponse, error) {
	mobile := strings.TrimSpace(req.MobileNumber)
	s.logger.Debug("verify otp requested", zap.String("mobile_number", mobile))

	u, err := s.users.FindByMobile(ctx, mobile)
	if err != nil {
		return VerifyOTPResponse{}, mapUserError(err)
	}
	if u.InvitationExpired(s.now()) {
		s.logger.Warn("verify otp invitation expired", zap.String("user_id", u.ID.String()))
		return VerifyOTPResponse{}, onboardingerrors.ErrInvitationExpired
	}

	if err := s.otps.Verify(ctx, mobile, req.OTP); err != nil {
		return VerifyOTPResponse{}, err
	}

	if u.OnboardingStatus == user.OnboardingInvited {
		u, err = s.mutate(ctx, "verify otp", u.ID.String(), func(locked *user.User) error {
			if locked.OnboardingStatus == user.OnboardingInvited {
				locked.OnboardingStatus = user.OnboardingPending
			}
			return nil
		})
		if err != nil {
			return VerifyOTPResponse{}, err
		}
	}

	sessionToken, err := s.tokens.Issue(subjectOf(u), token.TypeOnboarding)
	if err != nil {
		s.logger.Error("verify otp issue session token failed", zap.Error(err))
		return VerifyOTPResponse{}, err
	}

	s.logger.Info("verify otp success",
		zap.String("user_id", u.ID.String()),
		zap.String("onboarding_status", u.OnboardingStatus),
	)
	return VerifyOTPResponse{
		User:         user.ToResponse(*u),
		SessionToken: sessionToken,
		ExpiresIn:    int(s.tokens.TTL(token.TypeOnboarding).Seconds()),
	}, nil
}

func (s *service) Submit(ctx context.Context, personID string, req SubmitRequest) (MessageResponse, error) {
	s.logger.Debug("submit onboarding requested", zap.String("user_id", personID))

	u, err := s.mutate(ctx, "submit onboarding", personID, func(u *user.User) error {
		if u.OnboardingStatus != user.OnboardingPending && u.OnboardingStatus != user.OnboardingRejected {
			return onboardingerrors.ErrInvalidStageTransition
		}
		if err := mergeProfile(u, req); err != nil {
			return err
		}
		now := s.now()
		u.OnboardingStatus = user.OnboardingSubmitted
		u.OnboardingSubmittedAt = &now
		return nil
	})
	if err != nil {
		return MessageResponse{}, err
	}

	if s.cfg.HRNotificationEmail != "" {
		s.notifyQueued(ctx, notification.Message{
			To:       s.cfg.HRNotificationEmail,
			Template: notification.TemplateOnboardingSubmitted,
			Data: map[string]string{
				"name":          u.Name,
				"mobile_number": u.MobileNumber,
			},
		})
	}

	return MessageResponse{
		User:    user.ToResponse(*u),
		Message: "Onboarding details submitted for review",
	}, nil
}

func (s *service) Review(ctx context.Context, actorID, id string, req ReviewRequest) (ReviewResponse, error) {
	s.logger.Debug("review onboarding requested",
		zap.String("actor_id", actorID),
		zap.String("user_id", id),
		zap.String("decision", req.Decision),
	)

	reviewerID, err := uuid.Parse(actorID)
	if err != nil {
		return ReviewResponse{}, onboardingerrors.ErrInvalidUserID
	}
	if actorID == id {
		return ReviewResponse{}, onboardingerrors.ErrSelfReview
	}

	switch strings.ToLower(req.Decision) {
	case DecisionReject:
		return s.reject(ctx, reviewerID, id, req)
	case DecisionApprove:
		return s.approve(ctx, reviewerID, id, req)
	default:
		return ReviewResponse{}, onboardingerrors.ErrInvalidDecision
	}
}

func (s *service) reject(ctx context.Context, reviewerID uuid.UUID, id string, req ReviewRequest) (ReviewResponse, error) {
	u, err := s.mutate(ctx, "reject onboarding", id, func(u *user.User) error {
		if u.OnboardingStatus != user.OnboardingSubmitted {
			return onboardingerrors.ErrInvalidStageTransition
		}
		now := s.now()
		u.OnboardingStatus = user.OnboardingRejected
		u.OnboardingReviewedAt = &now
		u.OnboardingReviewedBy = &reviewerID
		u.OnboardingRemarks = optionalString(req.Comments)
		return nil
	})
	if err != nil {
		return ReviewResponse{}, err
	}

	s.notifyQueued(ctx, notification.Message{
		To:       u.PersonalEmail,
		Template: notification.TemplateOnboardingRejected,
		Data: map[string]string{
			"name":    u.Name,
			"remarks": strings.TrimSpace(req.Comments),
		},
	})
	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "ONBOARDING_REJECTED",
		ActorID: reviewerID.String(),
		Message: "onboarding rejected",
		Meta:    map[string]any{"user_id": id},
	})

	return ReviewResponse{
		User:    user.ToResponse(*u),
		Message: "Onboarding rejected",
	}, nil
}

// approve menjalankan langkah approval berurutan: semua perubahan identitas di satu
// transaksi, lalu email approval ditunggu, lalu promosi ke COMPLETED.
func (s *service) approve(ctx context.Context, reviewerID uuid.UUID, id string, req ReviewRequest) (ReviewResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.OfficialEmail))
	if email == "" {
		return ReviewResponse{}, onboardingerrors.ErrMissingOfficialEmail
	}
	if err := s.validate.Var(email, "email"); err != nil {
		return ReviewResponse{}, onboardingerrors.ErrInvalidEmailFormat
	}
	if _, err := uuid.Parse(id); err != nil {
		return ReviewResponse{}, onboardingerrors.ErrInvalidUserID
	}

	// Lookup manager di luar transaksi: query gagal di Postgres membatalkan
	// seluruh transaksi, sedangkan resolusi manager tidak boleh menggagalkan approval.
	current, err := s.users.FindByID(ctx, id)
	if err != nil {
		return ReviewResponse{}, mapUserError(err)
	}
	if current.OnboardingStatus != user.OnboardingSubmitted {
		s.logger.Warn("approve onboarding invalid stage",
			zap.String("user_id", id),
			zap.String("onboarding_status", current.OnboardingStatus),
		)
		return ReviewResponse{}, onboardingerrors.ErrInvalidStageTransition
	}
	resolution := s.resolveManager(ctx, current)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("approve onboarding begin tx failed", zap.Error(err))
		return ReviewResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.users.WithTx(tx)

	u, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		return ReviewResponse{}, mapUserError(err)
	}
	if u.OnboardingStatus != user.OnboardingSubmitted {
		s.logger.Warn("approve onboarding invalid stage",
			zap.String("user_id", id),
			zap.String("onboarding_status", u.OnboardingStatus),
		)
		return ReviewResponse{}, onboardingerrors.ErrInvalidStageTransition
	}

	inUse, err := qtx.EmailInUse(ctx, email, id)
	if err != nil {
		s.logger.Error("approve onboarding email check failed", zap.Error(err))
		return ReviewResponse{}, err
	}
	if inUse {
		return ReviewResponse{}, onboardingerrors.ErrEmailInUse
	}

	now := s.now()
	u.OnboardingStatus = user.OnboardingApproved
	u.OnboardingReviewedAt = &now
	u.OnboardingReviewedBy = &reviewerID
	if remarks := optionalString(req.Comments); remarks != nil {
		u.OnboardingRemarks = remarks
	}
	u.SetOfficialEmail(email)

	tempPassword := ""
	if u.PasswordHash == nil || u.HasTemporaryPassword {
		tempPassword, err = s.issueTemporaryPassword(u)
		if err != nil {
			s.logger.Error("approve onboarding temporary password failed", zap.Error(err))
			return ReviewResponse{}, err
		}
	}

	u.Status = user.StatusActive

	if u.EmployeeID == nil {
		next, err := s.counters.WithTx(tx).GetNextValue(ctx, counter.TypeEmployeeID)
		if err != nil {
			s.logger.Error("approve onboarding employee id counter failed", zap.Error(err))
			return ReviewResponse{}, err
		}
		if err := u.AssignEmployeeID(fmt.Sprintf(employeeIDFormat, next)); err != nil {
			return ReviewResponse{}, err
		}
	}

	if !sameManagerName(u, current) {
		// nama berubah sejak lookup; HR menautkan manual
		resolution = &ManagerResolution{Status: ManagerNotFound}
	} else if resolution != nil && resolution.Status == ManagerResolved {
		managerID := uuid.MustParse(*resolution.ManagerID)
		u.ReportingManagerID = &managerID
	}

	if err := u.Validate(); err != nil {
		return ReviewResponse{}, err
	}
	if err := qtx.Update(ctx, u); err != nil {
		mapped := user.MapRepositoryError(err)
		if errors.Is(mapped, usererrors.ErrEmailInUse) {
			return ReviewResponse{}, onboardingerrors.ErrEmailInUse
		}
		s.logger.Error("approve onboarding persist failed", zap.String("user_id", id), zap.Error(err))
		return ReviewResponse{}, mapped
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("approve onboarding commit failed", zap.String("user_id", id), zap.Error(err))
		return ReviewResponse{}, err
	}
	s.logger.Info("approve onboarding persisted",
		zap.String("user_id", id),
		zap.String("employee_id", *u.EmployeeID),
	)

	// Email approval membawa password sementara, jadi hanya dikirim langsung.
	// Tanpa mailer langsung Person tetap APPROVED apa pun kebijakannya.
	var notifyErr error
	directMissing := s.notifiers.Direct == nil
	if directMissing {
		notifyErr = onboardingerrors.ErrDirectNotifierUnavailable
	} else {
		notifyErr = s.notifiers.Direct.Notify(ctx, notification.Message{
			To:       u.PersonalEmail,
			Template: notification.TemplateOnboardingApproved,
			Data: map[string]string{
				"name":               u.Name,
				"employee_id":        *u.EmployeeID,
				"official_email":     u.Email(),
				"temporary_password": tempPassword,
				"login_url":          strings.TrimRight(s.cfg.FrontendURL, "/") + "/login",
			},
		})
	}
	if notifyErr != nil {
		s.logger.Warn("approve onboarding notification failed", zap.String("user_id", id), zap.Error(notifyErr))
	}

	resp := ReviewResponse{
		NotificationSent:  notifyErr == nil,
		ManagerResolution: resolution,
	}

	if notifyErr != nil && (directMissing || !s.cfg.CompleteOnNotifyFailure) {
		resp.User = user.ToResponse(*u)
		resp.Message = "Onboarding approved; approval email could not be delivered, onboarding stays APPROVED until completed"
		s.auditApproval(ctx, reviewerID, u, resp)
		return resp, nil
	}

	completed, err := s.mutate(ctx, "complete onboarding after approval", id, markCompleted(s.now))
	if err != nil {
		s.logger.Error("approve onboarding completion failed", zap.String("user_id", id), zap.Error(err))
		resp.User = user.ToResponse(*u)
		resp.Message = "Onboarding approved; completion is pending"
		s.auditApproval(ctx, reviewerID, u, resp)
		return resp, nil
	}

	resp.User = user.ToResponse(*completed)
	resp.Message = "Onboarding approved and completed"
	s.auditApproval(ctx, reviewerID, completed, resp)
	return resp, nil
}

func (s *service) auditApproval(ctx context.Context, reviewerID uuid.UUID, u *user.User, resp ReviewResponse) {
	meta := map[string]any{
		"user_id":           u.ID.String(),
		"employee_id":       *u.EmployeeID,
		"onboarding_status": u.OnboardingStatus,
		"notification_sent": resp.NotificationSent,
	}
	if resp.ManagerResolution != nil {
		meta["manager_resolution"] = resp.ManagerResolution.Status
	}
	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "ONBOARDING_APPROVED",
		ActorID: reviewerID.String(),
		Message: resp.Message,
		Meta:    meta,
	})
}

func sameManagerName(a, b *user.User) bool {
	if a.ReportingManagerName == nil || b.ReportingManagerName == nil {
		return a.ReportingManagerName == b.ReportingManagerName
	}
	return strings.TrimSpace(*a.ReportingManagerName) == strings.TrimSpace(*b.ReportingManagerName)
}

// resolveManager mencocokkan reporting_manager_name ke Person ACTIVE tanpa
// mengubah u. Gagal, kosong atau ambigu tidak pernah membatalkan approval.
func (s *service) resolveManager(ctx context.Context, u *user.User) *ManagerResolution {
	if u.ReportingManagerName == nil || strings.TrimSpace(*u.ReportingManagerName) == "" {
		return nil
	}
	name := strings.TrimSpace(*u.ReportingManagerName)

	candidates, err := s.users.FindActiveByNameLike(ctx, name)
	if err != nil {
		s.logger.Warn("manager resolution lookup failed", zap.String("user_id", u.ID.String()), zap.Error(err))
		return &ManagerResolution{Status: ManagerNotFound}
	}

	matches := make([]user.User, 0, len(candidates))
	for _, c := range candidates {
		if c.ID != u.ID {
			matches = append(matches, c)
		}
	}
	if len(matches) > 1 {
		var exact []user.User
		for _, c := range matches {
			if strings.EqualFold(strings.TrimSpace(c.Name), name) {
				exact = append(exact, c)
			}
		}
		if len(exact) == 1 {
			matches = exact
		}
	}

	switch len(matches) {
	case 0:
		s.logger.Info("manager resolution not found", zap.String("user_id", u.ID.String()), zap.String("manager_name", name))
		return &ManagerResolution{Status: ManagerNotFound}
	case 1:
		v := matches[0].ID.String()
		return &ManagerResolution{Status: ManagerResolved, ManagerID: &v}
	default:
		ids := make([]string, 0, len(matches))
		for _, c := range matches {
			ids = append(ids, c.ID.String())
		}
		s.logger.Info("manager resolution ambiguous",
			zap.String("user_id", u.ID.String()),
			zap.String("manager_name", name),
			zap.Int("candidates", len(ids)),
		)
		return &ManagerResolution{Status: ManagerAmbiguous, Candidates: ids}
	}
}

func (s *service) Complete(ctx context.Context, personID string) (MessageResponse, error) {
	u, err := s.mutate(ctx, "complete onboarding", personID, markCompleted(s.now))
	if err != nil {
		return MessageResponse{}, err
	}
	return MessageResponse{
		User:    user.ToResponse(*u),
		Message: "Onboarding completed",
	}, nil
}

func (s *service) GetStatus(ctx context.Context, personID string) (StatusResponse, error) {
	if _, err := uuid.Parse(personID); err != nil {
		return StatusResponse{}, onboardingerrors.ErrInvalidUserID
	}
	u, err := s.users.FindByID(ctx, personID)
	if err != nil {
		return StatusResponse{}, mapUserError(err)
	}
	return StatusResponse{
		OnboardingStatus: u.OnboardingStatus,
		Status:           u.Status,
		NextStep:         nextStep(u.OnboardingStatus),
		User:             user.ToResponse(*u),
	}, nil
}

func (s *service) List(ctx context.Context, onboardingStatus string) ([]user.UserResponse, error) {
	users, err := s.users.FindAll(ctx, user.Filter{OnboardingStatus: onboardingStatus})
	if err != nil {
		s.logger.Error("list onboarding failed", zap.Error(err))
		return nil, err
	}
	return user.ToListResponse(users), nil
}

// mutate mengunci satu Person, menerapkan apply, memvalidasi lalu commit.
func (s *service) mutate(ctx context.Context, op, id string, apply func(u *user.User) error) (*user.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, onboardingerrors.ErrInvalidUserID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error(op+" begin tx failed", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.users.WithTx(tx)

	u, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		return nil, mapUserError(err)
	}
	if err := apply(u); err != nil {
		s.logger.Warn(op+" rejected", zap.String("user_id", id), zap.Error(err))
		return nil, err
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	if err := qtx.Update(ctx, u); err != nil {
		s.logger.Error(op+" persist failed", zap.String("user_id", id), zap.Error(err))
		return nil, user.MapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error(op+" commit failed", zap.String("user_id", id), zap.Error(err))
		return nil, err
	}
	s.logger.Info(op+" success", zap.String("user_id", id), zap.String("onboarding_status", u.OnboardingStatus))
	return u, nil
}

func (s *service) issueTemporaryPassword(u *user.User) (string, error) {
	plain, err := password.GenerateTemporary(s.cfg.TempPasswordLength)
	if err != nil {
		return "", err
	}
	hash, err := password.Hash(plain, s.cfg.BcryptCost)
	if err != nil {
		return "", err
	}
	u.PasswordHash = &hash
	u.HasTemporaryPassword = true
	return plain, nil
}

func (s *service) notifyQueued(ctx context.Context, msg notification.Message) {
	if s.notifiers.Queued == nil {
		return
	}
	if err := s.notifiers.Queued.Notify(ctx, msg); err != nil {
		s.logger.Warn("enqueue notification failed",
			zap.String("template", msg.Template),
			zap.Error(err),
		)
	}
}

func (s *service) invitationURL(u *user.User) string {
	q := url.Values{}
	q.Set("mobile", u.MobileNumber)
	if u.InvitationToken != nil {
		q.Set("token", *u.InvitationToken)
	}
	return strings.TrimRight(s.cfg.FrontendURL, "/") + "/onboarding?" + q.Encode()
}

func markCompleted(now func() time.Time) func(u *user.User) error {
	return func(u *user.User) error {
		if u.OnboardingStatus != user.OnboardingApproved {
			return onboardingerrors.ErrInvalidStageTransition
		}
		t := now()
		u.OnboardingStatus = user.OnboardingCompleted
		u.OnboardingCompletedAt = &t
		return nil
	}
}

func mergeProfile(u *user.User, req SubmitRequest) error {
	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		u.Name = strings.TrimSpace(*req.Name)
	}
	if req.PersonalEmail != nil && strings.TrimSpace(*req.PersonalEmail) != "" {
		u.PersonalEmail = strings.ToLower(strings.TrimSpace(*req.PersonalEmail))
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return onboardingerrors.ErrInvalidDateOfBirth
		}
		u.DateOfBirth = &dob
	}
	if req.ReportingManager != nil {
		u.ReportingManagerName = optionalString(*req.ReportingManager)
		u.ReportingManagerID = nil
	}

	fields := []struct {
		src *string
		dst **string
	}{
		{req.Gender, &u.Gender},
		{req.Address, &u.Address},
		{req.City, &u.City},
		{req.State, &u.State},
		{req.PostalCode, &u.PostalCode},
		{req.Country, &u.Country},
		{req.Department, &u.Department},
		{req.JobTitle, &u.JobTitle},
		{req.EmergencyContactName, &u.EmergencyContactName},
		{req.EmergencyContactPhone, &u.EmergencyContactPhone},
		{req.BankAccountNumber, &u.BankAccountNumber},
		{req.BankName, &u.BankName},
		{req.IFSCCode, &u.IFSCCode},
		{req.PANNumber, &u.PANNumber},
		{req.NationalID, &u.NationalID},
	}
	for _, f := range fields {
		if f.src != nil {
			*f.dst = optionalString(*f.src)
		}
	}
	return nil
}

func nextStep(onboardingStatus string) string {
	switch onboardingStatus {
	case user.OnboardingInvited:
		return "verify_otp"
	case user.OnboardingPending:
		return "submit_details"
	case user.OnboardingSubmitted:
		return "await_review"
	case user.OnboardingRejected:
		return "resubmit_details"
	case user.OnboardingApproved:
		return "complete_onboarding"
	default:
		return "none"
	}
}

func toOTPResponse(res *otp.IssueResult, message string) OTPResponse {
	return OTPResponse{
		Message:          message,
		MobileNumber:     res.MobileNumber,
		ExpiresAt:        res.ExpiresAt.UTC().Format(time.RFC3339),
		ExpiresInSeconds: res.ExpiresInSeconds,
	}
}

func subjectOf(u *user.User) token.Subject {
	return token.Subject{
		UserID:           u.ID.String(),
		Role:             u.Role,
		Status:           u.Status,
		OnboardingStatus: u.OnboardingStatus,
	}
}

func newInvitationToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func optionalString(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

func mapUserError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return onboardingerrors.ErrUserNotFound
	}
	return err
}
