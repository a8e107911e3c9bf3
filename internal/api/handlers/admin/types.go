package admin

type LoginRequest struct {
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"` // seconds
}

type ReloadResponse struct {
	StaticEntries int `json:"static_entries"`
	ExtraEntries  int `json:"extra_entries"`
	MatcherSize   int `json:"matcher_size"`
}

type StatsResponse struct {
	MatcherSize    int              `json:"matcher_size"`
	WordlistDBSize *int             `json:"wordlist_db_size,omitempty"`
	AnalysesToday  map[string]int64 `json:"analyses_today"`
}
