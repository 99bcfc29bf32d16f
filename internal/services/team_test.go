package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/maitriparekhcs2848/GearGuard/internal/dto"
	"github.com/maitriparekhcs2848/GearGuard/internal/entities"
	"github.com/maitriparekhcs2848/GearGuard/internal/repositories"
	"github.com/maitriparekhcs2848/GearGuard/pkg/constants"
	"github.com/maitriparekhcs2848/GearGuard/pkg/utils"
)

func TestTeamService_ActiveRequestsDerivedOnRead(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemoryStore()
	svc := NewTeamService(store, store, zap.NewNop())

	teamID := uuid.NewString()
	require.NoError(t, store.CreateTeam(ctx, entities.Team{ID: teamID, Name: "Mechanics A", CreatedAt: time.Now()}))

	mk := func(status string) {
		require.NoError(t, store.CreateRequest(ctx, entities.Request{
			ID: uuid.NewString(), TeamID: teamID, Status: status, CreatedAt: time.Now(),
		}))
	}
	mk(constants.StatusNew)
	mk(constants.StatusInProgress)
	mk(constants.StatusRepaired)

	got, err := svc.FindTeam(ctx, teamID)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), got.ActiveRequests)

	list, total, err := svc.GetTeams(ctx, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, uint64(2), list[0].ActiveRequests)
}

func TestTeamService_CreateTeamDefaults(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemoryStore()
	svc := NewTeamService(store, store, zap.NewNop())

	got, err := svc.CreateTeam(ctx, dto.CreateTeamDTO{Name: "HVAC Crew"})
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultSpecialization, got.Specialization)
	assert.NotNil(t, got.Members)
	assert.Empty(t, got.Members)
	assert.Zero(t, got.ActiveRequests)

	got, err = svc.CreateTeam(ctx, dto.CreateTeamDTO{
		Name:           "Electrics",
		Specialization: utils.ToPtr("Electrical"),
		Members:        []string{"R. Castillo"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Electrical", got.Specialization)
	assert.Equal(t, []string{"R. Castillo"}, got.Members)
}
