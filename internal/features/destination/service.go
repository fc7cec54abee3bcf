package destination

import "context"

type DestinationService interface {
	CreateDestination(ctx context.Context, req *CreateDestinationRequest) (*Destination, error)
	GetDestination(ctx context.Context, id string) (*Destination, error)
	ListDestinations(ctx context.Context) ([]Destination, error)
	UpdateDestination(ctx context.Context, id string, update *DestinationUpdate) (*Destination, error)
	DeleteDestination(ctx context.Context, id string) (bool, error)
}

type DestinationServiceImpl struct {
	DestinationRepo DestinationRepository
}

func NewDestinationService(destinationRepo DestinationRepository) DestinationService {
	return &DestinationServiceImpl{
		DestinationRepo: destinationRepo,
	}
}

func (s *DestinationServiceImpl) CreateDestination(ctx context.Context, req *CreateDestinationRequest) (*Destination, error) {
	destination := &Destination{
		Name:                  req.Name,
		Country:               req.Country,
		Description:           req.Description,
		Facts:                 req.Facts,
		SpiritualSignificance: req.SpiritualSignificance,
		ImageURL:              req.ImageURL,
	}

	if err := s.DestinationRepo.Create(ctx, destination); err != nil {
		return nil, err
	}
	return destination, nil
}

func (s *DestinationServiceImpl) GetDestination(ctx context.Context, id string) (*Destination, error) {
	return s.DestinationRepo.FindByID(ctx, id)
}

func (s *DestinationServiceImpl) ListDestinations(ctx context.Context) ([]Destination, error) {
	return s.DestinationRepo.FindAll(ctx)
}

func (s *DestinationServiceImpl) UpdateDestination(ctx context.Context, id string, update *DestinationUpdate) (*Destination, error) {
	return s.DestinationRepo.Update(ctx, id, update)
}

func (s *DestinationServiceImpl) DeleteDestination(ctx context.Context, id string) (bool, error) {
	return s.DestinationRepo.Delete(ctx, id)
}
