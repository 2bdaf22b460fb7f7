package components

import (
	"renthub/internal/pkg/clock"
	"renthub/internal/usecase"
	"renthub/internal/usecase/commands"
	"renthub/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewItemCommands,
		commands.NewReservationCommands,
		commands.NewReviewCommands,
		commands.NewDisputeCommands,
		commands.NewPaymentCommands,
		commands.NewMaintenanceCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewItemQueries,
		queries.NewReservationQueries,
		queries.NewReviewQueries,
		queries.NewDisputeQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
