package itinerary

import "context"

type ItineraryService interface {
	CreateItinerary(ctx context.Context, req *CreateItineraryRequest) (*Itinerary, error)
	GetItinerary(ctx context.Context, id string) (*Itinerary, error)
	GetItineraryByGroup(ctx context.Context, groupID string) (*Itinerary, error)
	ListItineraries(ctx context.Context) ([]Itinerary, error)
	UpdateItinerary(ctx context.Context, id string, update *ItineraryUpdate) (*Itinerary, error)
	DeleteItinerary(ctx context.Context, id string) (bool, error)
}

type ItineraryServiceImpl struct {
	ItineraryRepo ItineraryRepository
}

func NewItineraryService(itineraryRepo ItineraryRepository) ItineraryService {
	return &ItineraryServiceImpl{
		ItineraryRepo: itineraryRepo,
	}
}

func (s *ItineraryServiceImpl) CreateItinerary(ctx context.Context, req *CreateItineraryRequest) (*Itinerary, error) {
	itinerary := &Itinerary{
		GroupID:       req.GroupID,
		GroupName:     req.GroupName,
		Flights:       req.Flights,
		Included:      req.Included,
		NotIncluded:   req.NotIncluded,
		DailySchedule: req.DailySchedule,
	}

	if err := s.ItineraryRepo.Create(ctx, itinerary); err != nil {
		return nil, err
	}
	return itinerary, nil
}

func (s *ItineraryServiceImpl) GetItinerary(ctx context.Context, id string) (*Itinerary, error) {
	return s.ItineraryRepo.FindByID(ctx, id)
}

func (s *ItineraryServiceImpl) GetItineraryByGroup(ctx context.Context, groupID string) (*Itinerary, error) {
	return s.ItineraryRepo.FindByGroupID(ctx, groupID)
}

func (s *ItineraryServiceImpl) ListItineraries(ctx context.Context) ([]Itinerary, error) {
	return s.ItineraryRepo.FindAll(ctx)
}

func (s *ItineraryServiceImpl) UpdateItinerary(ctx context.Context, id string, update *ItineraryUpdate) (*Itinerary, error) {
	return s.ItineraryRepo.Update(ctx, id, update)
}

func (s *ItineraryServiceImpl) DeleteItinerary(ctx context.Context, id string) (bool, error) {
	return s.ItineraryRepo.Delete(ctx, id)
}
