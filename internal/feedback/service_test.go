package feedback

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	items []*Feedback
}

func (m *memRepo) Create(ctx context.Context, f *Feedback) error {
	f.ID = "fb"
	m.items = append(m.items, f)
	return nil
}

func (m *memRepo) ListPublic(ctx context.Context) ([]*Feedback, error) {
	return m.items, nil
}

func TestCreateFeedback(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	tests := []struct {
		name    string
		in      Feedback
		wantErr error
	}{
		{"no participant", Feedback{Rating: 3}, ErrUIDRequired},
		{"rating too low", Feedback{ParticipantUID: "u1", Rating: 0}, ErrInvalidRating},
		{"rating too high", Feedback{ParticipantUID: "u1", Rating: 6}, ErrInvalidRating},
		{"ok", Feedback{ParticipantUID: "u1", Rating: 5, Comment: " great "}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := tt.in
			got, err := svc.Create(ctx, &in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "great", got.Comment)
		})
	}

	assert.Len(t, repo.items, 1)
}
