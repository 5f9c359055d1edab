package handler

import (
	"context"

	"github.com/sanosuguru/go-movie-ticket-booking/internal/application"
	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/customer"
	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/movie"
	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/seat"
	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/show"
	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/theatre"
)

// TheatreServiceInterface は劇場サービスのインターフェース
type TheatreServiceInterface interface {
	RegisterTheatre(ctx context.Context, input application.RegisterTheatreInput) (*theatre.Theatre, error)
	GetTheatre(ctx context.Context, location string) (*theatre.Theatre, error)
	ListTheatres(ctx context.Context) ([]*theatre.Theatre, error)
	RemoveTheatre(ctx context.Context, location string) error
}

// MovieServiceInterface は映画サービスのインターフェース
type MovieServiceInterface interface {
	RegisterMovie(ctx context.Context, input application.RegisterMovieInput) (*movie.Movie, error)
	GetMovie(ctx context.Context, id string) (*movie.Movie, error)
	ListMovies(ctx context.Context) ([]*movie.Movie, error)
}

// ShowServiceInterface は上映サービスのインターフェース
type ShowServiceInterface interface {
	RegisterShow(ctx context.Context, input application.RegisterShowInput) (*show.Show, error)
	GetShow(ctx context.Context, id string) (*show.Show, error)
	ListShows(ctx context.Context) ([]*show.Show, error)
	AddSeat(ctx context.Context, input application.AddSeatInput) (*seat.Seat, error)
	AddSeatRow(ctx context.Context, input application.AddSeatRowInput) ([]*seat.Seat, error)
	GetSeats(ctx context.Context, showID string) ([]seat.Details, error)
	GetAvailableSeats(ctx context.Context, showID string) ([]seat.Details, error)
}

// CustomerServiceInterface は顧客サービスのインターフェース
type CustomerServiceInterface interface {
	RegisterCustomer(ctx context.Context, input application.RegisterCustomerInput) (*customer.Customer, error)
	GetCustomer(ctx context.Context, id string) (*customer.Customer, error)
	GetBookings(ctx context.Context, id string) (map[string][]string, error)
	RemoveCustomer(ctx context.Context, id string) error
}

// BookingServiceInterface は予約サービスのインターフェース
type BookingServiceInterface interface {
	MakeBooking(ctx context.Context, input application.MakeBookingInput) (*application.BookingResult, error)
	CancelBooking(ctx context.Context, input application.CancelBookingInput) error
}

// CatalogServiceInterface はカタログ検索サービスのインターフェース
type CatalogServiceInterface interface {
	Search(ctx context.Context, criteria application.SearchCriteria, value string) ([]*show.Show, error)
}
