package services

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/SirClappington/competitor-watch/internal/models"
	"github.com/SirClappington/competitor-watch/internal/scan"
)

// ScanService relays a competitor's scan stream into a scan.View.
type ScanService struct {
	streamer ScanStreamer
	logger   *log.Logger
}

func NewScanService(streamer ScanStreamer, logger *log.Logger) *ScanService {
	return &ScanService{
		streamer: streamer,
		logger:   logger,
	}
}

// Run streams the scan for id into view until DONE, a stream failure, or ctx
// cancellation, and returns the final Viewer state. Stream failures are
// shown in the view and not returned; only cancellation yields an error.
func (s *ScanService) Run(ctx context.Context, id models.CompetitorID, view scan.View) (*scan.Viewer, error) {
	viewer := scan.NewViewer(view)

	stream, err := s.streamer.StreamScan(ctx, id)
	if err != nil {
		if ctx.Err() != nil {
			return viewer, ctx.Err()
		}
		s.logger.Printf("Error opening scan stream for competitor %s: %v", id, err)
		viewer.Fail()
		return viewer, nil
	}
	defer stream.Close()

	for {
		ev, err := stream.Next()
		if err != nil {
			if ctx.Err() != nil {
				return viewer, ctx.Err()
			}
			if errors.Is(err, io.EOF) {
				s.logger.Printf("Scan stream for competitor %s ended before DONE", id)
			} else {
				s.logger.Printf("Error reading scan stream for competitor %s: %v", id, err)
			}
			viewer.Fail()
			return viewer, nil
		}

		if !ev.IsMessage() {
			continue
		}
		if viewer.Handle(ev.Data) {
			s.logger.Printf("Scan stream for competitor %s closed", id)
			return viewer, nil
		}
	}
}
