package api

import (
	"encoding/hex"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/saveforge/achv/pkg/codec"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.metrics != nil {
		s.metrics.RecordHealthCheck(true)
	}
	sendSuccess(w, map[string]string{"status": "healthy"})
}

func (s *Server) handleListAchievements(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	summaries := make([]AchievementSummary, 0, s.file.Len())
	for _, rec := range s.file.Records() {
		summaries = append(summaries, AchievementSummary{
			ID:       rec.ID(),
			Unlocked: rec.Unlocked(),
		})
	}
	sendSuccess(w, summaries)
}

func (s *Server) handleGetAchievement(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		sendError(w, "Achievement id is required", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.file.Find(id)
	if !ok {
		sendError(w, "Achievement not found", http.StatusNotFound)
		return
	}

	sendSuccess(w, AchievementDetail{
		ID:           rec.ID(),
		Unlocked:     rec.Unlocked(),
		UnlockedAt:   rec.UnlockedAt(),
		Progress:     hex.EncodeToString(rec.Progress()),
		ProgressSize: len(rec.Progress()),
	})
}

func (s *Server) handleDeleteAchievement(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id := chi.URLParam(r, "id")
	if id == "" {
		sendError(w, "Achievement id is required", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.file.Find(id); !ok {
		if s.metrics != nil {
			s.metrics.RecordCodecOperation("delete", false, time.Since(start))
		}
		sendError(w, "Achievement not found", http.StatusNotFound)
		return
	}

	// Snapshot the pre-edit bytes first so the edit is always undoable.
	var snapshotID string
	if s.history != nil {
		sid, err := s.history.Snapshot(s.file.Encode())
		if err != nil {
			sendError(w, "Failed to snapshot file before edit", http.StatusInternalServerError)
			return
		}
		snapshotID = sid.String()
	}

	if err := s.file.Delete(id); err != nil {
		if s.metrics != nil {
			s.metrics.RecordCodecOperation("delete", false, time.Since(start))
		}
		if errors.Is(err, codec.ErrNotFound) {
			sendError(w, "Achievement not found", http.StatusNotFound)
			return
		}
		sendError(w, "Failed to delete achievement", http.StatusInternalServerError)
		return
	}

	encoded := s.file.Encode()
	if s.config.FilePath != "" {
		if err := os.WriteFile(s.config.FilePath, encoded, 0600); err != nil {
			sendError(w, "Failed to rewrite achievements file", http.StatusInternalServerError)
			return
		}
	}

	if s.metrics != nil {
		s.metrics.RecordCodecOperation("delete", true, time.Since(start))
		s.metrics.UpdateFileStats(s.file.Len(), len(encoded))
	}

	sendSuccess(w, DeleteResult{
		ID:         id,
		SnapshotID: snapshotID,
		Records:    s.file.Len(),
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	unlocked := 0
	for _, rec := range s.file.Records() {
		if rec.Unlocked() {
			unlocked++
		}
	}

	sendSuccess(w, FileStats{
		Version:     s.file.Version(),
		Records:     s.file.Len(),
		Unlocked:    unlocked,
		EncodedSize: s.file.EncodedSize(),
	})
}
