package meetlink

import "context"

// Provider выдаёт ссылку на видеовстречу для нового бронирования
type Provider interface {
	MeetingLink(ctx context.Context) (string, error)
}

// Static провайдер с фиксированной ссылкой.
// Заглушка до интеграции с реальным календарным API: все бронирования
// получают одну и ту же ссылку из конфигурации.
type Static struct {
	link string
}

// NewStatic создает провайдер с фиксированной ссылкой
func NewStatic(link string) *Static {
	return &Static{link: link}
}

func (s *Static) MeetingLink(ctx context.Context) (string, error) {
	return s.link, nil
}
