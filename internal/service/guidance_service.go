package service

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"career-path-be/internal/constant"
	"career-path-be/internal/dto"
	"career-path-be/pkg/guidance/source"
)

type IGuidanceService interface {
	StreamsForClass(ctx context.Context, class string) (*dto.StreamListResponse, error)
}

type guidanceService struct {
	source *source.AnswerSource
}

func NewGuidanceService(answerSource *source.AnswerSource) IGuidanceService {
	return &guidanceService{source: answerSource}
}

func (s *guidanceService) StreamsForClass(_ context.Context, class string) (*dto.StreamListResponse, error) {
	if class == "" {
		class = constant.DefaultClassLevel
	}

	data := s.source.StreamsForClass(class)
	if !data.Available {
		return nil, fiber.NewError(fiber.StatusNotFound, "no stream data for class "+class)
	}

	streams := make([]dto.StreamOptionDTO, 0, len(data.Streams))
	for _, st := range data.Streams {
		streams = append(streams, dto.StreamOptionDTO{
			ID:          st.ID,
			Name:        st.Name,
			Description: st.Description,
		})
	}

	return &dto.StreamListResponse{
		Class:   class,
		Streams: streams,
	}, nil
}
