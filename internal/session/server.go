package session

import (
	"bufio"
	"fmt"
	"net"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tetris-arcade/internal/tetris"
)

// Server accepts TCP connections and speaks the line-delimited JSON
// protocol on each one, framed with bufio.Scanner: one JSON object per
// line in, one JSON object per line out. No third-party RPC/WebSocket
// framework exists anywhere in the reference corpus, so this transport is
// hand-rolled on net/bufio/encoding/json.
type Server struct {
	config   tetris.EngineConfig
	saver    RunResultSaver
	logger   *log.Logger
	registry *Registry

	nextID uint64
}

// NewServer constructs a protocol server. saver may be nil to disable
// persistence (e.g. for ephemeral benchmarking connections).
func NewServer(config tetris.EngineConfig, saver RunResultSaver, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		config:   config,
		saver:    saver,
		logger:   logger,
		registry: NewRegistry(),
	}
}

// Serve listens on addr and handles connections until the listener is
// closed or ln.Accept returns a permanent error.
func (s *Server) Serve(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("session: listen %s: %w", addr, err)
	}
	defer ln.Close()

	s.logger.Info("protocol server listening", "addr", addr)

	for {
		conn, err := ln.Accept()
		if err != nil {
			return fmt.Errorf("session: accept: %w", err)
		}
		go s.handleConn(conn)
	}
}

func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()

	id := ID(fmt.Sprintf("conn-%d", atomic.AddUint64(&s.nextID, 1)))
	handle := NewChannelHandle(id, 256)
	s.registry.Register(handle)
	defer s.registry.Unregister(id)

	logger := s.logger.With("session", string(id), "remote", conn.RemoteAddr().String())
	logger.Info("client connected")
	defer logger.Info("client disconnected")

	sess := New(id, handle, s.config, s.saver, logger)

	inbound := make(chan []byte, 64)
	done := make(chan struct{})

	go func() {
		defer close(done)
		sess.Run(inbound, handle.Done())
	}()

	go func() {
		writer := bufio.NewWriter(conn)
		for {
			select {
			case line, ok := <-handle.Lines():
				if !ok {
					return
				}
				writer.Write(line)
				writer.WriteByte('\n')
				writer.Flush()
			case <-done:
				return
			}
		}
	}()

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := append([]byte(nil), scanner.Bytes()...)
		inbound <- line
	}

	close(inbound)
	handle.Close()
	<-done
}
