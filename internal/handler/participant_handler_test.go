package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"campmed/internal/logger"
	"campmed/internal/repository"
	"campmed/internal/service"
)

type renameRecorder struct {
	service.ParticipantService
	email, name string
}

func (r *renameRecorder) RenameByEmail(_ context.Context, email, name string) (*repository.UpdateResult, error) {
	r.email, r.name = email, name
	return &repository.UpdateResult{Acknowledged: true, MatchedCount: 2, ModifiedCount: 2}, nil
}

func TestParticipantHandler_RenameByEmail(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantName   string
	}{
		{"name field", `{"name":"New Name"}`, http.StatusOK, "New Name"},
		{"missing name", `{}`, http.StatusBadRequest, ""},
		{"old field name ignored", `{"participantName":"New Name"}`, http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &renameRecorder{}
			h := NewParticipantHandler(svc, logger.NewNop())

			rec := call(http.MethodPatch, "/participant/:email", "/participant/p@b.com", tt.body,
				withIdentity("admin@b.com", h.RenameByEmail))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantName, svc.name)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "p@b.com", svc.email)
				assert.JSONEq(t, `{"acknowledged":true,"matchedCount":2,"modifiedCount":2,"upsertedCount":0,"upsertedId":null}`, rec.Body.String())
			}
		})
	}
}
