package beer

import (
	"BeerExpiryTracker/domain"
	"BeerExpiryTracker/entities"
	"BeerExpiryTracker/internal/utils/storage"
	"BeerExpiryTracker/pkg/user"
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	BeerService interface {
		CreateBeer(ctx context.Context, req domain.CreateBeerRequest, userID string) (domain.BeerResponse, error)
		UpdateBeer(ctx context.Context, id string, req domain.UpdateBeerRequest, userID string) (domain.BeerResponse, error)
		DeleteBeer(ctx context.Context, id string, userID string) error
		GetBeers(ctx context.Context, userID string) ([]domain.BeerResponse, error)
		GetBeerByID(ctx context.Context, id string, userID string) (domain.BeerResponse, error)
		SearchBeers(ctx context.Context, query string, userID string) ([]domain.BeerResponse, error)
		GetUpcomingBeers(ctx context.Context, userID string, daysAhead int) ([]domain.BeerResponse, error)
		GetExpiryTimelineStats(ctx context.Context, userID string) (domain.ExpiryTimelineResponse, error)
		GetTypeDistributionStats(ctx context.Context, userID string) (map[string]int64, error)
		GetBrandDistributionStats(ctx context.Context, userID string) ([]domain.BrandCount, error)
		GetStatsSummary(ctx context.Context, userID string) (domain.StatsSummaryResponse, error)
	}

	beerService struct {
		beerRepository BeerRepository
		userRepository user.UserRepository
		s3             storage.AwsS3
	}
)

func NewBeerService(beerRepository BeerRepository, userRepository user.UserRepository, s3 storage.AwsS3) BeerService {
	return &beerService{
		beerRepository: beerRepository,
		userRepository: userRepository,
		s3:             s3,
	}
}

func (s *beerService) CreateBeer(ctx context.Context, req domain.CreateBeerRequest, userID string) (domain.BeerResponse, error) {
	expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
	if err != nil {
		return domain.BeerResponse{}, domain.ErrInvalidExpiryDate
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.BeerResponse{}, domain.ErrParseUUID
	}

	if _, err := s.userRepository.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.BeerResponse{}, domain.ErrUserNotFound
		}
		return domain.BeerResponse{}, err
	}

	beer := &entities.Beer{
		ID:          uuid.New(),
		UserID:      userUUID,
		BrandName:   req.BrandName,
		ProductName: req.ProductName,
		Type:        req.Type,
	}
	beer.SetExpiryDate(expiryDate)

	if req.Image != nil {
		fileName := fmt.Sprintf("beer-%s", beer.ID.String())
		objectKey, err := s.s3.UploadFile(fileName, req.Image, "beers", storage.AllowImage...)
		if err != nil {
			return domain.BeerResponse{}, err
		}
		beer.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	}

	if err := s.beerRepository.AddBeer(ctx, beer); err != nil {
		return domain.BeerResponse{}, err
	}

	return toBeerResponse(beer), nil
}

func (s *beerService) UpdateBeer(ctx context.Context, id string, req domain.UpdateBeerRequest, userID string) (domain.BeerResponse, error) {
	beer, err := s.getOwnedBeer(ctx, id, userID)
	if err != nil {
		return domain.BeerResponse{}, err
	}

	if req.BrandName != "" {
		beer.BrandName = req.BrandName
	}

	if req.ProductName != "" {
		beer.ProductName = req.ProductName
	}

	if req.Type != "" {
		beer.Type = req.Type
	}

	if req.ExpiryDate != "" {
		expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return domain.BeerResponse{}, domain.ErrInvalidExpiryDate
		}
		beer.SetExpiryDate(expiryDate)
	}

	if req.Image != nil {
		var objectKey string
		var uploadErr error

		if existingKey := s.s3.GetObjectKeyFromLink(beer.ImageURL); existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
		} else {
			fileName := fmt.Sprintf("beer-%s", beer.ID.String())
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "beers", storage.AllowImage...)
		}
		if uploadErr != nil {
			return domain.BeerResponse{}, uploadErr
		}
		beer.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	}

	if err := s.beerRepository.UpdateBeer(ctx, beer); err != nil {
		return domain.BeerResponse{}, err
	}

	return toBeerResponse(beer), nil
}

func (s *beerService) DeleteBeer(ctx context.Context, id string, userID string) error {
	beer, err := s.getOwnedBeer(ctx, id, userID)
	if err != nil {
		return err
	}

	if beer.ImageURL != "" {
		if objectKey := s.s3.GetObjectKeyFromLink(beer.ImageURL); objectKey != "" {
			if err := s.s3.DeleteFile(objectKey); err != nil {
				// image cleanup failure must not block the record deletion
				log.Printf("failed to delete image for beer %s: %v", beer.ID, err)
			}
		}
	}

	return s.beerRepository.DeleteBeer(ctx, id)
}

func (s *beerService) GetBeers(ctx context.Context, userID string) ([]domain.BeerResponse, error) {
	beers, err := s.beerRepository.GetBeersByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toBeerResponses(beers), nil
}

func (s *beerService) GetBeerByID(ctx context.Context, id string, userID string) (domain.BeerResponse, error) {
	beer, err := s.getOwnedBeer(ctx, id, userID)
	if err != nil {
		return domain.BeerResponse{}, err
	}
	return toBeerResponse(beer), nil
}

func (s *beerService) SearchBeers(ctx context.Context, query string, userID string) ([]domain.BeerResponse, error) {
	beers, err := s.beerRepository.SearchBeers(ctx, userID, query)
	if err != nil {
		return nil, err
	}
	return toBeerResponses(beers), nil
}

func (s *beerService) GetUpcomingBeers(ctx context.Context, userID string, daysAhead int) ([]domain.BeerResponse, error) {
	startDate := truncateToDay(time.Now())
	endDate := startDate.AddDate(0, 0, daysAhead)

	beers, err := s.beerRepository.GetBeersByExpiryRange(ctx, userID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	return toBeerResponses(beers), nil
}

func (s *beerService) GetExpiryTimelineStats(ctx context.Context, userID string) (domain.ExpiryTimelineResponse, error) {
	beers, err := s.beerRepository.GetBeersByUser(ctx, userID)
	if err != nil {
		return domain.ExpiryTimelineResponse{}, err
	}

	today := truncateToDay(time.Now())
	var breakdown domain.ExpiryBreakdown

	for _, b := range beers {
		switch {
		case b.ExpiryDate.Before(today):
			breakdown.Expired++
		case b.ExpiryDate.Before(today.AddDate(0, 0, 30)):
			breakdown.Within30Days++
		case b.ExpiryDate.Before(today.AddDate(0, 0, 90)):
			breakdown.Within90Days++
		default:
			breakdown.After90Days++
		}
	}

	monthlyExpiry := make(map[string]int64)
	for i := 0; i < 6; i++ {
		monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location()).AddDate(0, i, 0)
		monthEnd := monthStart.AddDate(0, 1, -1)

		var count int64
		for _, b := range beers {
			if !b.ExpiryDate.Before(monthStart) && !b.ExpiryDate.After(monthEnd) {
				count++
			}
		}
		monthlyExpiry[fmt.Sprintf("%d-%d", monthStart.Year(), int(monthStart.Month()))] = count
	}

	return domain.ExpiryTimelineResponse{
		ExpiryBreakdown: breakdown,
		MonthlyExpiry:   monthlyExpiry,
	}, nil
}

func (s *beerService) GetTypeDistributionStats(ctx context.Context, userID string) (map[string]int64, error) {
	beers, err := s.beerRepository.GetBeersByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	distribution := make(map[string]int64)
	for _, b := range beers {
		beerType := strings.TrimSpace(b.Type)
		if beerType == "" {
			beerType = "Unknown"
		}
		distribution[beerType]++
	}

	return distribution, nil
}

func (s *beerService) GetBrandDistributionStats(ctx context.Context, userID string) ([]domain.BrandCount, error) {
	beers, err := s.beerRepository.GetBeersByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64)
	for _, b := range beers {
		counts[b.BrandName]++
	}

	brands := make([]domain.BrandCount, 0, len(counts))
	for brand, count := range counts {
		brands = append(brands, domain.BrandCount{Brand: brand, Count: count})
	}

	sort.Slice(brands, func(i, j int) bool {
		if brands[i].Count != brands[j].Count {
			return brands[i].Count > brands[j].Count
		}
		return brands[i].Brand < brands[j].Brand
	})

	if len(brands) > 10 {
		brands = brands[:10]
	}

	return brands, nil
}

func (s *beerService) GetStatsSummary(ctx context.Context, userID string) (domain.StatsSummaryResponse, error) {
	beers, err := s.beerRepository.GetBeersByUser(ctx, userID)
	if err != nil {
		return domain.StatsSummaryResponse{}, err
	}

	today := truncateToDay(time.Now())
	summary := domain.StatsSummaryResponse{TotalBeers: len(beers)}

	var totalDays int64
	var nonExpired int64
	typeCounts := make(map[string]int64)

	for _, b := range beers {
		if b.ExpiryDate.Before(today) {
			summary.ExpiredBeers++
			continue
		}

		if b.ExpiryDate.Before(today.AddDate(0, 0, 30)) {
			summary.ExpiringSoon++
		}

		totalDays += int64(b.ExpiryDate.Sub(today).Hours() / 24)
		nonExpired++

		if beerType := strings.TrimSpace(b.Type); beerType != "" {
			typeCounts[beerType]++
		}
	}

	if nonExpired > 0 {
		summary.AvgDaysUntilExpiry = float64(totalDays) / float64(nonExpired)
	}

	topTypes := make([]domain.TypeCount, 0, len(typeCounts))
	for beerType, count := range typeCounts {
		topTypes = append(topTypes, domain.TypeCount{Type: beerType, Count: count})
	}

	sort.Slice(topTypes, func(i, j int) bool {
		if topTypes[i].Count != topTypes[j].Count {
			return topTypes[i].Count > topTypes[j].Count
		}
		return topTypes[i].Type < topTypes[j].Type
	})

	if len(topTypes) > 3 {
		topTypes = topTypes[:3]
	}
	summary.TopBeerTypes = topTypes

	return summary, nil
}

// getOwnedBeer loads a beer and enforces ownership before any mutation.
// ErrBeerNotFound and ErrUnauthorizedAccess stay distinct so handlers can
// map them to different statuses.
func (s *beerService) getOwnedBeer(ctx context.Context, id string, userID string) (*entities.Beer, error) {
	beer, err := s.beerRepository.GetBeerByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBeerNotFound
		}
		return nil, err
	}

	if beer.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedAccess
	}

	return beer, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func toBeerResponse(beer *entities.Beer) domain.BeerResponse {
	return domain.BeerResponse{
		ID:            beer.ID.String(),
		BrandName:     beer.BrandName,
		ProductName:   beer.ProductName,
		Type:          beer.Type,
		ExpiryDate:    beer.ExpiryDate,
		ReminderDate:  beer.ReminderDate,
		ReminderCount: beer.ReminderCount,
		ImageURL:      beer.ImageURL,
		CreatedAt:     beer.CreatedAt,
	}
}

func toBeerResponses(beers []*entities.Beer) []domain.BeerResponse {
	response := make([]domain.BeerResponse, 0, len(beers))
	for _, b := range beers {
		response = append(response, toBeerResponse(b))
	}
	return response
}
