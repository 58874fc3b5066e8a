package commands

//go:generate mockgen -destination=../../../tests/mock/commands/mock_commands.go -package=commandsmock room-booking/internal/usecase/commands AuthCommands,BookingCommands
