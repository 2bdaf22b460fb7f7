package components

import (
	"renthub/internal/handler"
	"renthub/internal/handler/api"
	"renthub/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewItemHandler,
		api.NewReservationHandler,
		api.NewReviewHandler,
		api.NewDisputeHandler,
		api.NewPaymentHandler,
		api.NewMaintenanceHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	item *api.ItemHandler,
	reservation *api.ReservationHandler,
	review *api.ReviewHandler,
	dispute *api.DisputeHandler,
	payment *api.PaymentHandler,
	maintenance *api.MaintenanceHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		Item:        item,
		Reservation: reservation,
		Review:      review,
		Dispute:     dispute,
		Payment:     payment,
		Maintenance: maintenance,
	}
}
