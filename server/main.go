package main

import (
	"log"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// ipRateLimiter tracks last connection time per IP to prevent abuse
type ipRateLimiter struct {
	mu       sync.Mutex
	times    map[string]time.Time
	cooldown time.Duration
	now      func() time.Time
}

func newIPRateLimiter(cooldown time.Duration) *ipRateLimiter {
	return &ipRateLimiter{
		times:    make(map[string]time.Time),
		cooldown: cooldown,
		now:      time.Now,
	}
}

// janitor drops stale entries every period. Blocks; run in a goroutine.
func (rl *ipRateLimiter) janitor(period time.Duration) {
	for range time.Tick(period) {
		rl.sweep()
	}
}

func (rl *ipRateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	cutoff := rl.now().Add(-rl.cooldown)
	for ip, t := range rl.times {
		if t.Before(cutoff) {
			delete(rl.times, ip)
		}
	}
}

// allow returns true if this IP can connect, and records the attempt
func (rl *ipRateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	now := rl.now()
	if last, ok := rl.times[ip]; ok {
		if now.Sub(last) < rl.cooldown {
			return false
		}
	}
	rl.times[ip] = now
	return true
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins for development; tighten in production
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// Enable per-message deflate compression (RFC 7692)
	EnableCompression: true,
}

// sendErrorAndClose sends an error message then closes the connection
func sendErrorAndClose(c *Conn, msg string) {
	_ = c.Send(ErrorMsg{Type: MsgError, Message: msg})
	c.Close()
}

// clientIP prefers X-Forwarded-For for clients behind a reverse proxy
func clientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		return ip
	}
	ip, _, _ := net.SplitHostPort(r.RemoteAddr)
	return ip
}

func main() {
	cfg, err := loadGameConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	if os.Getenv(envSeed) == "" {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	conns := NewConnManager()
	loop, err := NewGameLoop(cfg, conns)
	if err != nil {
		log.Fatalf("game setup error: %v", err)
	}
	rateLimiter := newIPRateLimiter(IPCooldownSec * time.Second)
	go rateLimiter.janitor(60 * time.Second)

	// WebSocket handler
	http.HandleFunc(WebSocketPath, func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		binary := r.URL.Query().Get("enc") == "msgpack"

		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("ws upgrade error: %v", err)
			return
		}
		conn := NewConn(ws, binary)

		// Check limits after upgrade so client can receive error messages
		if conns.Count() >= MaxPlayers {
			sendErrorAndClose(conn, "Server full. Please try again later.")
			return
		}
		if !rateLimiter.allow(ip) {
			sendErrorAndClose(conn, "Too many connections. Please wait a moment.")
			return
		}

		ws.EnableWriteCompression(true)
		conns.Add(conn)
		log.Printf("client connected: %s (binary=%v)", conn.ID, binary)

		// Spectate right away; a join message upgrades to pilot if the seat is free
		_ = conn.Send(loop.Welcome(conn))

		onDisconnect := func(c *Conn) {
			conns.Remove(c.ID)
			loop.Leave(c)
			log.Printf("client disconnected: %s", c.ID)
		}

		// Blocking read loop, runs until client disconnects
		conn.ReadLoop(loop.Handle, onDisconnect)
	})

	// Serve static client files
	fs := http.FileServer(http.Dir(envOr(envStaticDir, StaticDir)))
	http.Handle("/", fs)

	go loop.Run()

	addr := envOr(envPort, ServerPort)
	log.Printf("server listening on %s (%dx%d board, %d snakes, %s mode)",
		addr, cfg.Width, cfg.Height, cfg.NumSnakes, cfg.Mode)
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
