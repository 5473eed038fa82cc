package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"gotcha/meta"

	"golang.org/x/exp/rand"
)

type Option func(gs *GameState)

// WithEventSink sets where the state publishes its events.
func WithEventSink(sink EventSink) Option {
	return func(gs *GameState) {
		gs.sink = sink
	}
}

// WithRand sets the random source used for dice rolls.
func WithRand(src rand.Source) Option {
	return func(gs *GameState) {
		if src != nil {
			gs.rng = rand.New(src)
		}
	}
}

// WithSeed makes dice rolls reproducible.
func WithSeed(seed uint64) Option {
	return WithRand(rand.NewSource(seed))
}

// WithMaxDepth sets how many extra dice LegalMoves and MovePiece may chain
// after the first.
func WithMaxDepth(depth int) Option {
	return func(gs *GameState) {
		if depth >= 0 {
			gs.maxDepth = depth
		}
	}
}

// GameState is the rule engine of a match. It is changed only by RollDice,
// MovePiece and Pass, and reports every change as an Event.
type GameState struct {
	setup         GameSetup
	players       [2]Player
	dice          []Die
	activePlayer  int
	waiting       Action
	winner        int // -1 until a player has won
	maxDepth      int
	publishEvents bool
	sink          EventSink
	rng           *rand.Rand
}

// initialFaces are shown by the dice before the first roll.
var initialFaces = [meta.NUM_DICE]int{4, 2}

// NewGameState lays out the pieces described by setup and waits for the
// first roll.
func NewGameState(setup GameSetup, opts ...Option) (*GameState, error) {
	if err := setup.Validate(); err != nil {
		return nil, err
	}

	gs := &GameState{
		setup:         setup,
		dice:          make([]Die, 0, meta.NUM_DICE),
		waiting:       ActionRollDice,
		winner:        -1,
		maxDepth:      meta.DEFAULT_MAX_DEPTH,
		publishEvents: true,
	}
	for _, face := range initialFaces {
		gs.dice = append(gs.dice, NewDie(DefaultDieSides, face))
	}
	for p, ps := range setup.Players {
		player := Player{Index: p, Pieces: make([]Piece, 0, ps.NumPieces)}
		for i := 0; i < ps.NumPieces; i++ {
			pos := setup.StartPosition(p, i)
			player.Pieces = append(player.Pieces, Piece{
				ID:     PieceID{Player: p, Index: i},
				X:      pos.X,
				Y:      pos.Y,
				Active: true,
				Chosen: i < ps.NumChosenPieces,
			})
		}
		gs.players[p] = player
	}

	for _, opt := range opts {
		opt(gs)
	}
	if gs.rng == nil {
		seed, err := newSeed()
		if err != nil {
			return nil, err
		}
		gs.rng = rand.New(rand.NewSource(seed))
	}
	return gs, nil
}

func newSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// Clone returns a deep copy that never publishes events, for look-ahead.
// The copy shares the random source unless opts replace it.
func (gs *GameState) Clone(opts ...Option) *GameState {
	dice := make([]Die, len(gs.dice))
	copy(dice, gs.dice)

	c := &GameState{
		setup:         gs.setup,
		dice:          dice,
		activePlayer:  gs.activePlayer,
		waiting:       gs.waiting,
		winner:        gs.winner,
		maxDepth:      gs.maxDepth,
		publishEvents: false,
		rng:           gs.rng,
	}
	for i := range gs.players {
		c.players[i] = gs.players[i].copy()
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (gs *GameState) dispatch(e Event) {
	if gs.publishEvents && gs.sink != nil {
		gs.sink.Publish(e)
	}
}

func (gs *GameState) waitFor(action Action) {
	gs.waiting = action
	gs.dispatch(WaitingForAction{Action: action})
}

// expect refuses a command unless the state is waiting for action.
func (gs *GameState) expect(op string, action Action) error {
	if gs.winner >= 0 {
		return &IllegalStateError{Op: op, Waiting: gs.waiting, Reason: fmt.Sprintf("player %d has won", gs.winner), Err: ErrGameOver}
	}
	if gs.waiting != action {
		return &IllegalStateError{Op: op, Waiting: gs.waiting, Reason: fmt.Sprintf("not waiting for %s", action)}
	}
	return nil
}

// RollDice rolls every die and waits for a move.
func (gs *GameState) RollDice() error {
	if err := gs.expect("roll dice", ActionRollDice); err != nil {
		return err
	}
	for i := range gs.dice {
		gs.dice[i].Roll(gs.rng)
	}
	gs.waitFor(ActionMovePiece)
	gs.dispatch(DiceRolled{Dice: gs.Dice()})
	return nil
}

// MovePiece moves the active player's piece to a destination returned by
// PossibleMoves, spending the dice that pay for it. Landing on an opposing
// piece captures it. When the last die is spent the turn ends.
//
// The die whose value equals to.Delta is spent; if none does, the move
// chained dice and every remaining die is spent. A zero Delta takes the
// cheapest path to the cell.
func (gs *GameState) MovePiece(id PieceID, to Coordinate) error {
	const op = "move piece"
	if err := gs.expect(op, ActionMovePiece); err != nil {
		return err
	}

	piece := gs.piece(id)
	if piece == nil {
		return fmt.Errorf("%w: %s", ErrUnknownPiece, id)
	}
	if id.Player != gs.activePlayer {
		return fmt.Errorf("%w: %s", ErrNotYourPiece, id)
	}
	if !piece.Active {
		return fmt.Errorf("%w: %s has been captured", ErrIllegalMove, id)
	}

	delta, ok := gs.reaches(*piece, to)
	if !ok {
		return fmt.Errorf("%w: %s cannot reach %s", ErrIllegalMove, id, to.Position)
	}
	to.Delta = delta

	landing, err := gs.landing(op, id, to.Position)
	if err != nil {
		return err
	}
	used := gs.attributeDice(to.Delta)
	if err := gs.checkUnspent(op, used); err != nil {
		return err
	}

	// Validation is done; everything below mutates.
	for _, i := range used {
		gs.dice[i].Active = false
		gs.dispatch(DieUsed{Index: i, Die: gs.dice[i]})
	}

	if landing != nil {
		if landing.Chosen {
			piece.Chosen = true
		}
		landing.Active = false
		gs.players[gs.activePlayer].EarnedExtraTurn = true
		gs.dispatch(PieceCaptured{Capturing: *piece, Captured: *landing})
	}

	piece.X, piece.Y = to.X, to.Y
	gs.dispatch(PieceMoved{Piece: *piece})

	if len(gs.activeDice()) == 0 {
		gs.endTurn()
	}
	return nil
}

// Pass forfeits the remaining dice. It is only allowed when the active
// player has no legal move left.
func (gs *GameState) Pass() error {
	const op = "pass"
	if err := gs.expect(op, ActionMovePiece); err != nil {
		return err
	}
	if moves := gs.LegalMoves(); len(moves) > 0 {
		return &IllegalStateError{Op: op, Waiting: gs.waiting, Reason: fmt.Sprintf("%d legal moves remain", len(moves))}
	}
	for _, i := range gs.activeDice() {
		gs.dice[i].Active = false
		gs.dispatch(DieUsed{Index: i, Die: gs.dice[i]})
	}
	gs.endTurn()
	return nil
}

// landing returns the piece a move of id onto pos would capture, if any.
// Move search never offers a cell held by the mover, so a friendly piece
// there means the state is corrupt.
func (gs *GameState) landing(op string, id PieceID, pos Position) (*Piece, error) {
	occupant := gs.pieceAt(pos.X, pos.Y)
	if occupant != nil && occupant.Owner() == id.Player {
		return nil, &IllegalStateError{Op: op, Waiting: gs.waiting, Reason: fmt.Sprintf("%s would capture friendly %s", id, occupant.ID)}
	}
	return occupant, nil
}

// attributeDice picks the dice that pay for a move costing delta: the first
// active die showing delta, else every active die.
func (gs *GameState) attributeDice(delta int) []int {
	active := gs.activeDice()
	for _, i := range active {
		if gs.dice[i].Value == delta {
			return []int{i}
		}
	}
	return active
}

// checkUnspent refuses to spend a die twice.
func (gs *GameState) checkUnspent(op string, used []int) error {
	for _, i := range used {
		if i < 0 || i >= len(gs.dice) || !gs.dice[i].Active {
			return &IllegalStateError{Op: op, Waiting: gs.waiting, Reason: fmt.Sprintf("die %d is already spent", i)}
		}
	}
	return nil
}

func (gs *GameState) endTurn() {
	mover := gs.activePlayer
	other := (mover + 1) % 2

	if len(gs.players[other].ActivePieces()) == 0 {
		gs.winner = mover
		gs.dispatch(GameEnded{Winner: mover})
	}

	if gs.players[mover].EarnedExtraTurn {
		gs.players[mover].EarnedExtraTurn = false
	} else {
		gs.activePlayer = other
		gs.dispatch(PlayerNext{Player: other})
	}

	gs.waitFor(ActionRollDice)
}

// activeDice returns the indices of the unspent dice.
func (gs *GameState) activeDice() []int {
	var idx []int
	for i, d := range gs.dice {
		if d.Active {
			idx = append(idx, i)
		}
	}
	return idx
}

func (gs *GameState) piece(id PieceID) *Piece {
	if id.Player < 0 || id.Player >= len(gs.players) {
		return nil
	}
	pieces := gs.players[id.Player].Pieces
	if id.Index < 0 || id.Index >= len(pieces) {
		return nil
	}
	return &pieces[id.Index]
}

func (gs *GameState) pieceAt(x, y int) *Piece {
	for p := range gs.players {
		pieces := gs.players[p].Pieces
		for i := range pieces {
			if pieces[i].Active && pieces[i].X == x && pieces[i].Y == y {
				return &pieces[i]
			}
		}
	}
	return nil
}

// LegalMoves lists every move the active player can make with the
// remaining dice. It is empty unless the state is waiting for a move.
func (gs *GameState) LegalMoves() []Move {
	if gs.waiting != ActionMovePiece || gs.winner >= 0 {
		return nil
	}
	var moves []Move
	for _, piece := range gs.players[gs.activePlayer].Pieces {
		if !piece.Active {
			continue
		}
		for _, to := range gs.PossibleMoves(piece.ID, gs.maxDepth) {
			moves = append(moves, Move{Piece: piece.ID, To: to})
		}
	}
	return moves
}

func (gs *GameState) Setup() GameSetup {
	return gs.setup
}

func (gs *GameState) WaitingForAction() Action {
	return gs.waiting
}

func (gs *GameState) ActivePlayerIndex() int {
	return gs.activePlayer
}

func (gs *GameState) ActivePlayer() Player {
	return gs.players[gs.activePlayer].copy()
}

func (gs *GameState) OtherPlayer() Player {
	return gs.players[(gs.activePlayer+1)%2].copy()
}

func (gs *GameState) Players() [2]Player {
	return [2]Player{gs.players[0].copy(), gs.players[1].copy()}
}

// AllPieces returns every piece of both players, captured ones included.
func (gs *GameState) AllPieces() []Piece {
	var pieces []Piece
	for _, p := range gs.players {
		pieces = append(pieces, p.Pieces...)
	}
	return pieces
}

func (gs *GameState) Piece(id PieceID) (Piece, bool) {
	p := gs.piece(id)
	if p == nil {
		return Piece{}, false
	}
	return *p, true
}

// PieceAt returns the active piece on (x, y), if any.
func (gs *GameState) PieceAt(x, y int) (Piece, bool) {
	p := gs.pieceAt(x, y)
	if p == nil {
		return Piece{}, false
	}
	return *p, true
}

func (gs *GameState) Dice() []Die {
	dice := make([]Die, len(gs.dice))
	copy(dice, gs.dice)
	return dice
}

func (gs *GameState) ActiveDice() []Die {
	var dice []Die
	for _, i := range gs.activeDice() {
		dice = append(dice, gs.dice[i])
	}
	return dice
}

// Winner returns the winning player once the match is decided.
func (gs *GameState) Winner() (int, bool) {
	return gs.winner, gs.winner >= 0
}

func (gs *GameState) MaxDepth() int {
	return gs.maxDepth
}

func (gs *GameState) PublishesEvents() bool {
	return gs.publishEvents
}

func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(gs.activePlayer))
	binary.Write(hasher, binary.LittleEndian, int64(gs.waiting))
	binary.Write(hasher, binary.LittleEndian, int64(gs.winner))

	for _, d := range gs.dice {
		binary.Write(hasher, binary.LittleEndian, int64(d.Value))
		binary.Write(hasher, binary.LittleEndian, d.Active)
	}

	for _, p := range gs.players {
		binary.Write(hasher, binary.LittleEndian, p.EarnedExtraTurn)
		for _, piece := range p.Pieces {
			binary.Write(hasher, binary.LittleEndian, int64(piece.X))
			binary.Write(hasher, binary.LittleEndian, int64(piece.Y))
			binary.Write(hasher, binary.LittleEndian, piece.Active)
			binary.Write(hasher, binary.LittleEndian, piece.Chosen)
		}
	}

	return StateHash(hasher.Sum64())
}
