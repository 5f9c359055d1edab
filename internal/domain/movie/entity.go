package movie

import "time"

// Movie は映画エンティティを表す
type Movie struct {
	ID          string
	Title       string
	Genre       string
	DurationMin int
	Language    string
	ReleaseDate time.Time
}

// Details は映画のスナップショットを表す
type Details struct {
	ID          string    `json:"movie_id"`
	Title       string    `json:"title"`
	Genre       string    `json:"genre"`
	DurationMin int       `json:"duration_min"`
	Language    string    `json:"language"`
	ReleaseDate time.Time `json:"release_date"`
}

// NewMovie は新しい映画を作成する
func NewMovie(id, title, genre string, durationMin int, language string, releaseDate time.Time) *Movie {
	return &Movie{
		ID:          id,
		Title:       title,
		Genre:       genre,
		DurationMin: durationMin,
		Language:    language,
		ReleaseDate: releaseDate,
	}
}

// Details は映画のスナップショットを返す
func (m *Movie) Details() Details {
	return Details{
		ID:          m.ID,
		Title:       m.Title,
		Genre:       m.Genre,
		DurationMin: m.DurationMin,
		Language:    m.Language,
		ReleaseDate: m.ReleaseDate,
	}
}

// Validate は映画の検証を行う
func (m *Movie) Validate() error {
	if m.ID == "" {
		return ErrMovieIDRequired
	}
	if m.Title == "" {
		return ErrMovieTitleRequired
	}
	if m.DurationMin <= 0 {
		return ErrInvalidDuration
	}
	return nil
}
