package grpcapi

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/Leganyst/time-manager/internal/service"
)

type StatusProvider interface {
	Status(ctx context.Context, contactCenterID string, at *time.Time) (service.Status, error)
}

type Server struct {
	svc StatusProvider
}

func NewServer(svc StatusProvider) *Server {
	return &Server{svc: svc}
}

func (s *Server) GetHours(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	fields := req.GetFields()

	id := strings.TrimSpace(fields["contact_center_id"].GetStringValue())
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "contact_center_id is required")
	}

	var at *time.Time
	if raw := strings.TrimSpace(fields["at"].GetStringValue()); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "at must be an RFC3339 timestamp")
		}
		at = &parsed
	}

	st, err := s.svc.Status(ctx, id, at)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidContactCenter):
			return nil, status.Error(codes.InvalidArgument, "contact_center_id must be a UUID")
		case errors.Is(err, service.ErrContactCenterNotFound):
			return nil, status.Error(codes.NotFound, "contact center not found")
		default:
			log.Ctx(ctx).Error().Err(err).Str("contact_center_id", id).Msg("Failed to evaluate opening hours")
			return nil, status.Errorf(codes.Internal, "evaluate opening hours: %v", err)
		}
	}

	resp, err := structpb.NewStruct(map[string]interface{}{
		"contact_center_id": st.ContactCenterID,
		"open":              st.Open,
		"weekday_hours":     st.WeekdayHours,
		"weekend_hours":     st.WeekendHours,
		"evaluated_at":      st.EvaluatedAt.Format(time.RFC3339),
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "build response: %v", err)
	}
	return resp, nil
}

// LoggingInterceptor logs every unary call with its status code.
func LoggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	logger := log.With().Str("method", info.FullMethod).Logger()
	ctx = logger.WithContext(ctx)

	resp, err := handler(ctx, req)

	logger.Info().
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Msg("RPC completed")
	return resp, err
}
