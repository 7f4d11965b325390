// Package server wires the engine (sixseat/holdem), the transport
// (sixseat/internal/transport), the audit log (sixseat/internal/history)
// and config overlay into a single game-loop actor: the one goroutine
// that owns and mutates the table.
package server

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"sixseat/holdem"
	"sixseat/internal/config"
	"sixseat/internal/history"
	"sixseat/internal/transport"
	"sixseat/internal/wire"
)

// errHalt signals the degenerate-table condition: fewer than two
// non-LEFT seats remain willing to play.
var errHalt = errors.New("server: fewer than two seats remain, halting")

// Server runs the accept phase once, then drives hands forever (or
// until the table degenerates) on a single goroutine.
type Server struct {
	cfg       config.Config
	overlay   *config.Overlay
	store     *history.Store
	table     *holdem.Table
	listeners *transport.Listeners
	conns     [holdem.NumSeats]*transport.SeatConn
}

// New builds a Server and opens its six seat listeners. It does not
// block on accepting connections; call Run for that.
func New(cfg config.Config, overlay *config.Overlay, store *history.Store) (*Server, error) {
	tableCfg := holdem.Config{StartingStack: cfg.StartingStack, Seed: cfg.Seed}
	tbl, err := holdem.NewTable(tableCfg)
	if err != nil {
		return nil, fmt.Errorf("server: new table: %w", err)
	}

	ln, err := transport.Listen(cfg.BasePort)
	if err != nil {
		return nil, err
	}

	return &Server{
		cfg:       cfg,
		overlay:   overlay,
		store:     store,
		table:     tbl,
		listeners: ln,
	}, nil
}

// Run accepts all six seat connections, then drives hands until the
// table degenerates or every connection is gone.
func (s *Server) Run() error {
	if err := s.acceptAll(); err != nil {
		s.listeners.Close()
		return err
	}
	log.Printf("all six seats joined, starting play (base_port=%d stack=%s seed=%d)",
		s.cfg.BasePort, chips(s.cfg.StartingStack), s.cfg.Seed)

	for {
		if s.table.NonLeftCount() < 2 {
			return s.halt()
		}
		if err := s.collectReady(); err != nil {
			if errors.Is(err, errHalt) {
				return s.halt()
			}
			return err
		}
		s.table.StartHand()
		log.Printf("hand starting: dealer=%d", s.table.DealerSeat())
		if err := s.runHand(); err != nil {
			return err
		}
	}
}

func (s *Server) acceptAll() error {
	var wg sync.WaitGroup
	errs := make([]error, holdem.NumSeats)
	for i := 0; i < holdem.NumSeats; i++ {
		wg.Add(1)
		go func(seat int) {
			defer wg.Done()
			sc, err := s.listeners.AcceptSeat(seat)
			if err != nil {
				errs[seat] = err
				return
			}
			s.conns[seat] = sc
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	for i := 0; i < holdem.NumSeats; i++ {
		if v, ok := s.overlay.StartingStackOverride(); ok {
			s.table.SetStartingStackOverride(v)
		} else {
			s.table.ClearStartingStackOverride()
		}
		if err := s.table.Join(i); err != nil {
			return err
		}
	}
	return nil
}

// collectReady gathers READY/LEAVE from every non-LEFT seat between
// hands, looping passes over seats that haven't yet responded until at
// least two are ready (or the table degenerates).
func (s *Server) collectReady() error {
	s.table.ClearReady()
	for {
		for i := 0; i < holdem.NumSeats; i++ {
			if s.table.Seat(i).Status == holdem.StatusLeft || s.table.IsReady(i) {
				continue
			}
			msg, err := s.conns[i].Receive()
			if err != nil {
				s.leaveSeat(i)
				continue
			}
			switch msg.Type {
			case wire.Ready:
				s.table.MarkReady(i)
				s.sendAck(i)
			case wire.Leave:
				s.leaveSeat(i)
			default:
				s.sendNack(i)
			}
		}
		if s.table.NonLeftCount() < 2 {
			return errHalt
		}
		if s.table.ReadyCount() >= 2 {
			return nil
		}
	}
}

// runHand drives one hand from PREFLOP through SHOWDOWN.
func (s *Server) runHand() error {
	for {
		switch s.table.Stage() {
		case holdem.StagePreflop, holdem.StageFlop, holdem.StageTurn, holdem.StageRiver:
			outcome, err := s.runStreet()
			if err != nil {
				return err
			}
			if outcome == holdem.StreetShortCircuit {
				s.table.ShortCircuit()
			} else {
				s.table.AdvanceStreet()
			}
		case holdem.StageShowdown:
			settlement := s.table.Settle()
			s.broadcastEnd(settlement)
			s.recordHand(settlement)
			s.table.ResetForNextHand()
			return nil
		default:
			return fmt.Errorf("server: unexpected stage %v mid-hand", s.table.Stage())
		}
	}
}

// runStreet is the betting controller for one street: broadcast INFO,
// then loop reading from current_seat until the street ends. A street
// can open with zero ACTIVE seats left to act (everyone remaining is
// ALL_IN, or ALL_IN plus FOLDED) — the termination predicate is
// vacuously satisfied in that case, so Outcome is checked before ever
// touching current_seat's connection; current_seat is only meaningful
// once Outcome reports StreetContinue.
func (s *Server) runStreet() (holdem.StreetOutcome, error) {
	s.broadcastInfo()
	if out := s.table.Outcome(); out != holdem.StreetContinue {
		return out, nil
	}
	for {
		seat := s.table.CurrentSeat()
		msg, err := s.conns[seat].Receive()
		if err != nil {
			s.leaveSeat(seat)
			if out := s.table.Outcome(); out != holdem.StreetContinue {
				return out, nil
			}
			s.table.AdvanceCurrentSeat()
			s.broadcastInfo()
			continue
		}

		action, target, ok := actionFromMessage(msg)
		if !ok {
			s.sendNack(seat)
			continue
		}
		if err := s.table.Act(seat, action, target); err != nil {
			s.sendNack(seat)
			if s.overlay.Verbose() {
				log.Printf("seat %d action rejected: %v", seat, err)
			}
			continue
		}
		s.sendAck(seat)
		if s.overlay.Verbose() {
			log.Printf("seat %d acted: type=%d target=%d", seat, action, target)
		}

		out := s.table.Outcome()
		if out != holdem.StreetContinue {
			return out, nil
		}
		s.table.AdvanceCurrentSeat()
		s.broadcastInfo()
	}
}

func actionFromMessage(msg wire.ClientMessage) (holdem.ActionType, int64, bool) {
	switch msg.Type {
	case wire.Check:
		return holdem.ActionCheck, 0, true
	case wire.Call:
		return holdem.ActionCall, 0, true
	case wire.Raise:
		return holdem.ActionRaise, msg.Params[0], true
	case wire.Fold:
		return holdem.ActionFold, 0, true
	default:
		return 0, 0, false
	}
}

func (s *Server) broadcastInfo() {
	for i := 0; i < holdem.NumSeats; i++ {
		if s.table.Seat(i).Status == holdem.StatusLeft {
			continue
		}
		info := wire.FromInfo(s.table.BuildInfo(i))
		if err := s.conns[i].Send(wire.ServerMessage{Type: wire.Info, Info: info}); err != nil {
			s.leaveSeat(i)
		}
	}
}

func (s *Server) broadcastEnd(settlement holdem.Settlement) {
	end := wire.FromEnd(s.table.BuildEnd(settlement))
	for i := 0; i < holdem.NumSeats; i++ {
		if s.table.Seat(i).Status == holdem.StatusLeft {
			continue
		}
		if err := s.conns[i].Send(wire.ServerMessage{Type: wire.End, End: end}); err != nil {
			s.leaveSeat(i)
		}
	}
	log.Printf("hand settled: winner=%d amount=%s short_circuit=%v", settlement.Winner, chips(settlement.Amount), settlement.ShortCircuited)
}

func (s *Server) recordHand(settlement holdem.Settlement) {
	if s.store == nil {
		return
	}
	rec := history.Record{
		HandID:       uuid.New().String(),
		DealerSeat:   s.table.DealerSeat(),
		WinnerSeat:   settlement.Winner,
		PotAmount:    settlement.Amount,
		ShortCircuit: settlement.ShortCircuited,
	}
	if err := s.store.RecordHand(rec); err != nil {
		log.Printf("history: failed to record hand %s: %v", rec.HandID, err)
	}
}

func (s *Server) sendAck(seat int) {
	if err := s.conns[seat].Send(wire.ServerMessage{Type: wire.Ack}); err != nil {
		s.leaveSeat(seat)
	}
}

func (s *Server) sendNack(seat int) {
	if err := s.conns[seat].Send(wire.ServerMessage{Type: wire.Nack}); err != nil {
		s.leaveSeat(seat)
	}
}

func (s *Server) leaveSeat(seat int) {
	if s.table.Seat(seat).Status == holdem.StatusLeft {
		return
	}
	s.table.Leave(seat)
	if s.conns[seat] != nil {
		s.conns[seat].Close()
	}
	log.Printf("seat %d left", seat)
}

// halt broadcasts HALT to every still-connected seat and tears down
// the transport; it is terminal, matching the degenerate-table error
// path.
func (s *Server) halt() error {
	log.Printf("halting: fewer than two seats remain")
	for i := 0; i < holdem.NumSeats; i++ {
		if s.table.Seat(i).Status == holdem.StatusLeft || s.conns[i] == nil {
			continue
		}
		_ = s.conns[i].Send(wire.ServerMessage{Type: wire.Halt})
		s.conns[i].Close()
	}
	s.listeners.Close()
	return errHalt
}

// Close releases the listeners and any still-open connections without
// sending HALT; used for non-degenerate shutdown paths (e.g. tests).
func (s *Server) Close() {
	s.listeners.Close()
	for _, c := range s.conns {
		if c != nil {
			c.Close()
		}
	}
}
