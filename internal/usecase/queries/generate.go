package queries

//go:generate mockgen -destination=../../../tests/mock/queries/mock_queries.go -package=queriesmock room-booking/internal/usecase/queries BookingQueries,ResourceQueries,UserQueries
