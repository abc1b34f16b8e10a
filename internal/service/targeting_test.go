package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"moments_pipeline/internal/domain"
	"moments_pipeline/internal/service/mocks"
)

type TargetingServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	subscribers *mocks.MockSubscriberStore
	service     *TargetingService
}

func (s *TargetingServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.subscribers = mocks.NewMockSubscriberStore(s.ctrl)
	s.service = NewTargetingService(s.subscribers)
}

func (s *TargetingServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestTargetingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TargetingServiceTestSuite))
}

func subscriberPool() []domain.Subscriber {
	return []domain.Subscriber{
		{PhoneNumber: "+27820000001", Regions: []string{"Gauteng"}, Categories: []string{"Health", "Events"}},
		{PhoneNumber: "+27820000002", Regions: []string{"Western Cape"}, Categories: []string{"Health"}},
		{PhoneNumber: "+27820000003", Regions: []string{domain.RegionNational}, Categories: []string{"Safety"}},
		{PhoneNumber: "+27820000004", Regions: []string{"Gauteng", "Limpopo"}, Categories: []string{"Events"}},
	}
}

func (s *TargetingServiceTestSuite) TestResolve_RegionAndCategory() {
	ctx := context.Background()
	s.subscribers.EXPECT().ListOptedIn(ctx).Return(subscriberPool(), nil)

	moment := &domain.Moment{Region: "Gauteng", Category: "Health"}

	targets, err := s.service.Resolve(ctx, moment)

	s.NoError(err)
	s.Require().Len(targets, 1)
	s.Equal("+27820000001", targets[0].PhoneNumber)
}

func (s *TargetingServiceTestSuite) TestResolve_NationalReachesAllRegions() {
	ctx := context.Background()
	s.subscribers.EXPECT().ListOptedIn(ctx).Return(subscriberPool(), nil)

	moment := &domain.Moment{Region: domain.RegionNational, Category: "Health"}

	targets, err := s.service.Resolve(ctx, moment)

	s.NoError(err)
	s.Require().Len(targets, 2)
	s.Equal("+27820000001", targets[0].PhoneNumber)
	s.Equal("+27820000002", targets[1].PhoneNumber)
}

func (s *TargetingServiceTestSuite) TestResolve_EmptyFiltersMatchEveryone() {
	ctx := context.Background()
	s.subscribers.EXPECT().ListOptedIn(ctx).Return(subscriberPool(), nil)

	moment := &domain.Moment{Region: "", Category: ""}

	targets, err := s.service.Resolve(ctx, moment)

	s.NoError(err)
	s.Len(targets, 4)
}

func (s *TargetingServiceTestSuite) TestResolve_RegionalMomentMatchesExplicitRegionOnly() {
	// A National-only preference does not match a regional moment.
	ctx := context.Background()
	s.subscribers.EXPECT().ListOptedIn(ctx).Return(subscriberPool(), nil)

	moment := &domain.Moment{Region: "Limpopo", Category: "Events"}

	targets, err := s.service.Resolve(ctx, moment)

	s.NoError(err)
	s.Require().Len(targets, 1)
	s.Equal("+27820000004", targets[0].PhoneNumber)
}

func (s *TargetingServiceTestSuite) TestResolve_NoMatches() {
	ctx := context.Background()
	s.subscribers.EXPECT().ListOptedIn(ctx).Return(subscriberPool(), nil)

	moment := &domain.Moment{Region: "Free State", Category: "Technology"}

	targets, err := s.service.Resolve(ctx, moment)

	s.NoError(err)
	s.Empty(targets)
}

func (s *TargetingServiceTestSuite) TestResolve_StoreError() {
	ctx := context.Background()
	s.subscribers.EXPECT().ListOptedIn(ctx).Return(nil, errors.New("db down"))

	targets, err := s.service.Resolve(ctx, &domain.Moment{})

	s.Error(err)
	s.Nil(targets)
	s.Contains(err.Error(), "list subscribers")
}
