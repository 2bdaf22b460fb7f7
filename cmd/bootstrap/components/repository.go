package components

import (
	"renthub/internal/infra/events"
	"renthub/internal/infra/imagestore"
	"renthub/internal/infra/readstore"
	repo_impl "renthub/internal/infra/repository"
	"renthub/internal/usecase/commands"
	"renthub/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Write-side repositories
		fx.Annotate(
			repo_impl.NewProfileRepository,
			fx.As(new(commands.ProfileRepository)),
		),
		fx.Annotate(
			repo_impl.NewItemRepository,
			fx.As(new(commands.ItemRepository)),
			fx.As(new(commands.ItemFinder)),
		),
		fx.Annotate(
			repo_impl.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
			fx.As(new(commands.HoldExpirer)),
		),
		fx.Annotate(
			repo_impl.NewReviewRepository,
			fx.As(new(commands.ReviewRepository)),
		),
		fx.Annotate(
			repo_impl.NewDisputeRepository,
			fx.As(new(commands.DisputeRepository)),
		),

		// Read-side stores
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
			fx.As(new(commands.AvailabilityReader)),
			fx.As(new(commands.ReservationViewFinder)),
		),
		fx.Annotate(
			readstore.NewItemReadStore,
			fx.As(new(queries.ItemReadStore)),
		),
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewReadStore)),
		),
		fx.Annotate(
			readstore.NewDisputeReadStore,
			fx.As(new(queries.DisputeReadStore)),
		),

		// Supporting infrastructure
		fx.Annotate(
			imagestore.NewResolver,
			fx.As(new(queries.ImageURLResolver)),
		),
		events.NewPublisher,
	),
)
