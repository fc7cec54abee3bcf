package spiritual

import "context"

type ContentService interface {
	CreateContent(ctx context.Context, req *CreateContentRequest) (*SpiritualContent, error)
	GetContent(ctx context.Context, id string) (*SpiritualContent, error)
	ListContent(ctx context.Context) ([]SpiritualContent, error)
	ListContentByCategory(ctx context.Context, category string) ([]SpiritualContent, error)
	UpdateContent(ctx context.Context, id string, update *ContentUpdate) (*SpiritualContent, error)
	DeleteContent(ctx context.Context, id string) (bool, error)
}

type ContentServiceImpl struct {
	ContentRepo ContentRepository
}

func NewContentService(contentRepo ContentRepository) ContentService {
	return &ContentServiceImpl{
		ContentRepo: contentRepo,
	}
}

func (s *ContentServiceImpl) CreateContent(ctx context.Context, req *CreateContentRequest) (*SpiritualContent, error) {
	content := &SpiritualContent{
		Title:    req.Title,
		Type:     req.Type,
		Content:  req.Content,
		Category: req.Category,
	}

	if err := s.ContentRepo.Create(ctx, content); err != nil {
		return nil, err
	}
	return content, nil
}

func (s *ContentServiceImpl) GetContent(ctx context.Context, id string) (*SpiritualContent, error) {
	return s.ContentRepo.FindByID(ctx, id)
}

func (s *ContentServiceImpl) ListContent(ctx context.Context) ([]SpiritualContent, error) {
	return s.ContentRepo.FindAll(ctx)
}

func (s *ContentServiceImpl) ListContentByCategory(ctx context.Context, category string) ([]SpiritualContent, error) {
	return s.ContentRepo.FindByCategory(ctx, category)
}

func (s *ContentServiceImpl) UpdateContent(ctx context.Context, id string, update *ContentUpdate) (*SpiritualContent, error) {
	return s.ContentRepo.Update(ctx, id, update)
}

func (s *ContentServiceImpl) DeleteContent(ctx context.Context, id string) (bool, error) {
	return s.ContentRepo.Delete(ctx, id)
}
