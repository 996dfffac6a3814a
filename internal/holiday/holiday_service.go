package holiday

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"strconv"
	"strings"
	"time"

	holidayerrors "github.com/saxena100parth/codriva-hrms-sub002/internal/holiday/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const HolidayYearKeyPrefix = "holidays:"

func GetHolidayYearKey(year int) string {
	return HolidayYearKeyPrefix + strconv.Itoa(year)
}

//go:generate mockgen -source=holiday_service.go -destination=mock/holiday_service_mock.go -package=mock
type Service interface {
	IsHoliday(ctx context.Context, date time.Time) (bool, error)
	List(ctx context.Context, year int) ([]HolidayResponse, error)
	Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	Delete(ctx context.Context, id string) error
	BulkCopy(ctx context.Context, req BulkCopyRequest) (BulkCopyResponse, error)
}

type service struct {
	repo     Repository
	rdb      redis.Cmdable
	sf       *singleflight.Group
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewService menerima rdb nil bila Redis tidak dipakai; lookup langsung ke repository.
func NewService(repo Repository, rdb redis.Cmdable, cacheTTL time.Duration, logger ...*zap.Logger) Service {
	l := zap.L().Named("holiday.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("holiday.service")
	}
	if cacheTTL <= 0 {
		cacheTTL = 24 * time.Hour
	}
	return &service{
		repo:     repo,
		rdb:      rdb,
		sf:       &singleflight.Group{},
		cacheTTL: cacheTTL,
		logger:   l,
	}
}

func (s *service) IsHoliday(ctx context.Context, date time.Time) (bool, error) {
	dates, err := s.yearDates(ctx, date.Year())
	if err != nil {
		return false, err
	}
	_, ok := dates[date.Format(DateLayout)]
	return ok, nil
}

// yearDates mengembalikan set tanggal libur satu tahun: Redis dulu,
// lalu repository lewat singleflight supaya cache miss tidak jadi stampede.
func (s *service) yearDates(ctx context.Context, year int) (map[string]struct{}, error) {
	cacheKey := GetHolidayYearKey(year)

	// 1. Cek Redis
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var days []string
			if json.Unmarshal([]byte(cached), &days) == nil {
				return toDateSet(days), nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn("holiday cache read failed", zap.String("key", cacheKey), zap.Error(err))
		}
	}

	// 2. Singleflight ke repository
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		holidays, err := s.repo.FindByYear(ctx, year)
		if err != nil {
			return nil, err
		}

		days := make([]string, 0, len(holidays))
		for _, h := range holidays {
			if d, ok := h.OccurrenceIn(year); ok {
				days = append(days, d.Format(DateLayout))
			}
		}

		// 3. Simpan ke Redis
		if s.rdb != nil {
			if jsonData, err := json.Marshal(days); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, jsonData, s.cacheTTL).Err(); err != nil {
					s.logger.Warn("holiday cache write failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}
		return days, nil
	})
	if err != nil {
		s.logger.Error("load holidays failed", zap.Int("year", year), zap.Error(err))
		return nil, err
	}

	return toDateSet(v.([]string)), nil
}

func toDateSet(days []string) map[string]struct{} {
	set := make(map[string]struct{}, len(days))
	for _, d := range days {
		set[d] = struct{}{}
	}
	return set
}

// invalidateFor menghapus cache tahun h, atau semua tahun bila h berulang.
func (s *service) invalidateFor(ctx context.Context, h Holiday) {
	if h.IsRecurring {
		s.invalidateAll(ctx)
		return
	}
	s.invalidate(ctx, h.Date.Year())
}

func (s *service) invalidateAll(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	var cursor uint64
	for {
		keys, next, err := s.rdb.Scan(ctx, cursor, HolidayYearKeyPrefix+"*", 100).Result()
		if err != nil {
			s.logger.Error("failed to scan holiday cache keys", zap.Error(err))
			return
		}
		if len(keys) > 0 {
			if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
				s.logger.Error("failed to invalidate holiday cache", zap.Error(err), zap.Strings("keys", keys))
			}
		}
		if next == 0 {
			return
		}
		cursor = next
	}
}

func (s *service) invalidate(ctx context.Context, year int) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetHolidayYearKey(year)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate holiday cache",
			zap.Error(err),
			zap.String("key", cacheKey),
		)
	}
}

func (s *service) List(ctx context.Context, year int) ([]HolidayResponse, error) {
	if year < 1900 || year > 9999 {
		return nil, holidayerrors.ErrInvalidYear
	}

	holidays, err := s.repo.FindByYear(ctx, year)
	if err != nil {
		s.logger.Error("list holidays failed", zap.Int("year", year), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	resp := make([]HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		d, ok := h.OccurrenceIn(year)
		if !ok {
			continue
		}
		h.Date = d
		resp = append(resp, toResponse(h))
	}
	slices.SortStableFunc(resp, func(a, b HolidayResponse) int {
		return strings.Compare(a.Date, b.Date)
	})
	return resp, nil
}

func (s *service) Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error) {
	date, err := time.Parse(DateLayout, strings.TrimSpace(req.Date))
	if err != nil {
		return HolidayResponse{}, holidayerrors.ErrInvalidDate
	}

	h := &Holiday{
		ID:          uuid.New(),
		Date:        date,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		IsRecurring: req.IsRecurring,
	}
	if err := s.repo.Create(ctx, h); err != nil {
		mapped := mapRepositoryError(err)
		if errors.Is(mapped, holidayerrors.ErrDuplicateDate) {
			s.logger.Warn("create holiday rejected: duplicate date", zap.String("date", req.Date))
		} else {
			s.logger.Error("create holiday failed", zap.Error(err))
		}
		return HolidayResponse{}, mapped
	}

	s.invalidateFor(ctx, *h)
	s.logger.Info("create holiday success", zap.String("holiday_id", h.ID.String()))
	return toResponse(*h), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return holidayerrors.ErrInvalidHolidayID
	}

	h, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete holiday failed", zap.String("holiday_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.invalidateFor(ctx, *h)
	s.logger.Info("delete holiday success", zap.String("holiday_id", id))
	return nil
}

// BulkCopy menyalin libur satu tahun ke tahun lain. Kegagalan per item
// (tanggal duplikat, 29 Feb di tahun non-kabisat) dikumpulkan, batch jalan terus.
func (s *service) BulkCopy(ctx context.Context, req BulkCopyRequest) (BulkCopyResponse, error) {
	if req.FromYear == req.ToYear {
		return BulkCopyResponse{}, holidayerrors.ErrSameYear
	}

	source, err := s.repo.FindByYear(ctx, req.FromYear)
	if err != nil {
		s.logger.Error("bulk copy load source failed", zap.Int("from_year", req.FromYear), zap.Error(err))
		return BulkCopyResponse{}, mapRepositoryError(err)
	}

	result := BulkCopyResponse{
		Created: []HolidayResponse{},
		Failed:  []BulkCopyFailure{},
	}
	for _, src := range source {
		if _, ok := src.OccurrenceIn(req.ToYear); ok && src.Date.Year() != req.ToYear {
			// libur berulang sudah berlaku di tahun tujuan
			continue
		}
		target := time.Date(req.ToYear, src.Date.Month(), src.Date.Day(), 0, 0, 0, 0, time.UTC)
		targetLabel := strconv.Itoa(req.ToYear) + src.Date.Format("-01-02")

		if target.Month() != src.Date.Month() || target.Day() != src.Date.Day() {
			result.Failed = append(result.Failed, BulkCopyFailure{
				Name:   src.Name,
				Date:   targetLabel,
				Reason: "date does not exist in target year",
			})
			continue
		}

		h := &Holiday{
			ID:          uuid.New(),
			Date:        target,
			Name:        src.Name,
			Description: src.Description,
		}
		if err := s.repo.Create(ctx, h); err != nil {
			mapped := mapRepositoryError(err)
			reason := "could not create holiday"
			if errors.Is(mapped, holidayerrors.ErrDuplicateDate) {
				reason = holidayerrors.ErrDuplicateDate.Message
			} else {
				s.logger.Error("bulk copy item failed", zap.String("date", targetLabel), zap.Error(err))
			}
			result.Failed = append(result.Failed, BulkCopyFailure{Name: src.Name, Date: targetLabel, Reason: reason})
			continue
		}
		result.Created = append(result.Created, toResponse(*h))
	}

	if len(result.Created) > 0 {
		s.invalidate(ctx, req.ToYear)
	}

	s.logger.Info("bulk copy holidays done",
		zap.Int("from_year", req.FromYear),
		zap.Int("to_year", req.ToYear),
		zap.Int("created", len(result.Created)),
		zap.Int("failed", len(result.Failed)),
	)
	return result, nil
}
