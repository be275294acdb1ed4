package supabase

import (
	"github.com/supabase-community/supabase-go"
	"portfolio-backend/internal/config"
)

type Client struct {
	Supabase *supabase.Client
	Config   *config.Config
}

// NewClient builds the shared Supabase client. The configured key is expected
// to be the service role key: row ownership is enforced by the queries in this
// package, not by forwarding the caller's session to PostgREST.
func NewClient(cfg *config.Config) (*Client, error) {
	client, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseKey, &supabase.ClientOptions{
		Schema: "public",
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		Supabase: client,
		Config:   cfg,
	}, nil
}
