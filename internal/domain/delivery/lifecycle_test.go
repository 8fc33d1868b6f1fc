package delivery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aquagest/internal/core/apperror"
	"aquagest/internal/domain/state"
)

func fixture(status state.DeliveryStatus) state.State {
	s := state.Empty()
	s.Deliveries = []state.Delivery{
		{
			ID:           "d1",
			SaleID:       "s1",
			ClientID:     "c1",
			ClientName:   "Maria Silva",
			Address:      "Rua 108, 400",
			Status:       status,
			ScheduledFor: time.Now().UTC(),
		},
	}
	return s
}

func TestSetStatus_PendingToInRoute(t *testing.T) {
	s := fixture(state.DeliveryPending)

	next, err := SetStatus(s, Transition{DeliveryID: "d1", Status: state.DeliveryInRoute, Deliverer: "Carlos"})

	require.NoError(t, err)
	d, _ := next.FindDelivery("d1")
	assert.Equal(t, state.DeliveryInRoute, d.Status)
	assert.Equal(t, "Carlos", d.DelivererName)
	assert.Nil(t, d.CompletedAt)

	// Deliverer auto-registered.
	assert.True(t, next.HasDeliverer("Carlos"))

	// Prior snapshot untouched.
	prior, _ := s.FindDelivery("d1")
	assert.Equal(t, state.DeliveryPending, prior.Status)
	assert.False(t, s.HasDeliverer("Carlos"))
}

func TestSetStatus_InRouteRequiresDeliverer(t *testing.T) {
	s := fixture(state.DeliveryPending)

	next, err := SetStatus(s, Transition{DeliveryID: "d1", Status: state.DeliveryInRoute})

	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeDelivererRequired, appErr.Code)

	d, _ := next.FindDelivery("d1")
	assert.Equal(t, state.DeliveryPending, d.Status)
}

func TestSetStatus_KnownDelivererNotDuplicated(t *testing.T) {
	s := fixture(state.DeliveryPending)
	s = s.AddDeliverer("Carlos")

	next, err := SetStatus(s, Transition{DeliveryID: "d1", Status: state.DeliveryInRoute, Deliverer: "Carlos"})

	require.NoError(t, err)
	assert.Equal(t, []string{"Carlos"}, next.Deliverers)
}

func TestSetStatus_InRouteToDelivered(t *testing.T) {
	s := fixture(state.DeliveryInRoute)

	next, err := SetStatus(s, Transition{DeliveryID: "d1", Status: state.DeliveryDelivered})

	require.NoError(t, err)
	d, _ := next.FindDelivery("d1")
	assert.Equal(t, state.DeliveryDelivered, d.Status)
	require.NotNil(t, d.CompletedAt)
	assert.WithinDuration(t, time.Now().UTC(), *d.CompletedAt, time.Minute)
}

func TestSetStatus_CancelEdges(t *testing.T) {
	for _, from := range []state.DeliveryStatus{state.DeliveryPending, state.DeliveryInRoute} {
		s := fixture(from)

		next, err := SetStatus(s, Transition{DeliveryID: "d1", Status: state.DeliveryCancelled})

		require.NoError(t, err, "cancel from %s", from)
		d, _ := next.FindDelivery("d1")
		assert.Equal(t, state.DeliveryCancelled, d.Status)
		assert.Nil(t, d.CompletedAt)
	}
}

func TestSetStatus_PendingToDeliveredRejected(t *testing.T) {
	s := fixture(state.DeliveryPending)

	_, err := SetStatus(s, Transition{DeliveryID: "d1", Status: state.DeliveryDelivered})

	require.Error(t, err)
	assert.True(t, apperror.IsInvalidTransition(err))
}

func TestSetStatus_TerminalStatesAreImmutable(t *testing.T) {
	targets := []state.DeliveryStatus{
		state.DeliveryPending,
		state.DeliveryInRoute,
		state.DeliveryDelivered,
		state.DeliveryCancelled,
	}

	for _, terminal := range []state.DeliveryStatus{state.DeliveryDelivered, state.DeliveryCancelled} {
		for _, target := range targets {
			s := fixture(terminal)

			_, err := SetStatus(s, Transition{DeliveryID: "d1", Status: target, Deliverer: "Carlos"})

			require.Error(t, err, "from %s to %s", terminal, target)
			assert.True(t, apperror.IsInvalidTransition(err))
		}
	}
}

func TestSetStatus_SelfTransitionRejected(t *testing.T) {
	s := fixture(state.DeliveryPending)

	_, err := SetStatus(s, Transition{DeliveryID: "d1", Status: state.DeliveryPending})

	require.Error(t, err)
	assert.True(t, apperror.IsInvalidTransition(err))
}

func TestSetStatus_UnknownDelivery(t *testing.T) {
	s := fixture(state.DeliveryPending)

	_, err := SetStatus(s, Transition{DeliveryID: "missing", Status: state.DeliveryInRoute, Deliverer: "Carlos"})

	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestSetStatus_UnknownStatus(t *testing.T) {
	s := fixture(state.DeliveryPending)

	_, err := SetStatus(s, Transition{DeliveryID: "d1", Status: "TELEPORTED"})

	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}
