package domain

// Movie es lo mínimo que usamos de TMDB.
type Movie struct {
	ID          int
	Title       string
	Overview    string
	PosterPath  string
	GenreIDs    []int
	VoteAverage float64
	VoteCount   int
}

type Horoscope struct {
	Sign string
	Text string
	Icon string
}

type RGB [3]uint8

type Palette []RGB

// Track: la canción que el usuario está escuchando (sale de la presencia).
type Track struct {
	ID       int
	Title    string
	Artist   string
	URL      string
	CoverURL string
}

type Listener struct {
	UserID      string
	DisplayName string
	Image       string
	Bio         string
	Streams     int
	PlayedMs    int64
}

// WelcomeCard es el payload que espera el servicio de render.
type WelcomeCard struct {
	Avatar      string `json:"avatar"`
	MemberCount string `json:"member_count"`
	Username    string `json:"username"`
}

// TrackHit es un resultado de búsqueda en stats.fm.
type TrackHit struct {
	ID      int
	Name    string
	Artists []string
}
