package melon

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() []Melon {
	return s.repo.List()
}

func (s *Service) GetByID(id string) (Melon, error) {
	return s.repo.GetByID(id)
}
