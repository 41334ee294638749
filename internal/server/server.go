package server

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tartampluch/go-profile/internal/config"
)

// resource is one published document with its HTTP caching metadata.
type resource struct {
	data         []byte
	contentType  string
	etag         string
	lastModified string // http.TimeFormat
}

type routeTable map[string]*resource

// FeedServer serves the published documents (birthday feed, completeness
// gauge) on localhost.
type FeedServer struct {
	Port string

	// routes is replaced wholesale on Publish so reads never lock.
	routes  atomic.Pointer[routeTable]
	known   map[string]bool
	writeMu sync.Mutex
}

// NewFeedServer creates a server for the given port. Only routes listed in
// known are served; they answer 503 until first published.
func NewFeedServer(port string, known ...string) *FeedServer {
	s := &FeedServer{Port: port, known: make(map[string]bool, len(known))}
	for _, r := range known {
		s.known[r] = true
	}
	empty := routeTable{}
	s.routes.Store(&empty)
	return s
}

// Start listens until ctx is cancelled, then shuts down gracefully.
func (s *FeedServer) Start(ctx context.Context) error {
	if s.Port == "" {
		return errors.New(config.ErrPortRequired)
	}

	srv := &http.Server{
		Addr:         config.LocalhostBindAddr + config.AddrSeparator + s.Port,
		Handler:      s,
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	serverError := make(chan error, config.ChannelBufferSize)
	go func() {
		slog.Info(config.MsgServerListen,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyPort, s.Port,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info(config.MsgServerStop, config.LogKeyComponent, config.CompServer)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: %w", config.ErrServerShutdown, err)
		}
		return nil
	case err := <-serverError:
		return fmt.Errorf("%s: %w", config.ErrServerStartup, err)
	}
}

// Publish replaces the document served at route.
func (s *FeedServer) Publish(route, contentType string, data []byte) {
	hash := sha256.Sum256(data)
	res := &resource{
		data:         data,
		contentType:  contentType,
		etag:         fmt.Sprintf(config.FormatETag, hex.EncodeToString(hash[:])),
		lastModified: time.Now().UTC().Format(http.TimeFormat),
	}

	s.writeMu.Lock()
	next := maps.Clone(*s.routes.Load())
	next[route] = res
	s.routes.Store(&next)
	s.writeMu.Unlock()

	slog.Debug(config.MsgRoutePublish,
		config.LogKeyComponent, config.CompServer,
		config.LogKeyRoute, route,
		config.LogKeySizeBytes, len(data),
		config.LogKeyETag, res.etag,
	)
}

// ServeHTTP serves a published document with conditional-request support.
func (s *FeedServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set(config.HeaderAllow, config.AllowedMethods)
		http.Error(w, config.HTTPMsgMethodNotAll, http.StatusMethodNotAllowed)
		return
	}

	res := (*s.routes.Load())[r.URL.Path]
	if res == nil {
		if s.known[r.URL.Path] {
			w.Header().Set(config.HeaderRetryAfter, config.RetryAfterSeconds)
			http.Error(w, config.HTTPMsgInitializing, http.StatusServiceUnavailable)
			return
		}
		http.Error(w, config.HTTPMsgNotFound, http.StatusNotFound)
		return
	}

	h := w.Header()
	h.Set(config.HeaderContentType, res.contentType)
	h.Set(config.HeaderXContentType, config.MimeNoSniff)
	h.Set(config.HeaderCacheControl, config.CacheControlPrivate)
	h.Set(config.HeaderETag, res.etag)
	h.Set(config.HeaderLastModified, res.lastModified)

	if notModified(r, res) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	if r.Method == http.MethodHead {
		return
	}
	if _, err := w.Write(res.data); err != nil {
		slog.Error(config.ErrWriteResp,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyError, err,
		)
	}
}

// notModified evaluates If-None-Match first, then If-Modified-Since.
func notModified(r *http.Request, res *resource) bool {
	if match := r.Header.Get(config.HeaderIfNoneMatch); match != "" {
		return match == res.etag
	}
	since := r.Header.Get(config.HeaderIfModifiedSince)
	if since == "" {
		return false
	}
	clientTime, err := time.Parse(http.TimeFormat, since)
	if err != nil {
		return false
	}
	serverTime, err := time.Parse(http.TimeFormat, res.lastModified)
	if err != nil {
		return false
	}
	return !serverTime.After(clientTime)
}
