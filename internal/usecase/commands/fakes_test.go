//go:build unit

package commands_test

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"hotel-backend/internal/domain/customer"
	"hotel-backend/internal/domain/hotel"
	"hotel-backend/internal/domain/provisioning"
	"hotel-backend/internal/domain/reservation"
	"hotel-backend/internal/domain/room"
	"hotel-backend/internal/domain/user"
	"hotel-backend/internal/infra"
	sqlc "hotel-backend/internal/infra/sqlc/generated"
	"hotel-backend/internal/pkg/clock"
	"hotel-backend/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func notFound(what string) error {
	return infra.WrapRepoErr(what+" not found", pgx.ErrNoRows, infra.KindNotFound)
}

func duplicate(what string) error {
	return infra.WrapRepoErr(what+" already exists", errors.New("unique violation"), infra.KindDuplicateKey)
}

func fkViolation(what string) error {
	return infra.WrapRepoErr(what+" still referenced", errors.New("foreign key violation"), infra.KindForeignKeyViolated)
}

type pairKey struct{ a, b uuid.UUID }

type intentRecord struct {
	id         uuid.UUID
	customerID uuid.UUID
	hotelID    uuid.UUID
	step       provisioning.Step
	providerID string
	attempts   int32
	lastError  string
}

func (r intentRecord) toDomain() *provisioning.Intent {
	return provisioning.ReconstructIntent(r.id, r.customerID, r.hotelID, r.step, r.providerID, r.attempts, r.lastError, time.Time{})
}

type memState struct {
	hotels       map[uuid.UUID]shared.HotelSnapshot
	categories   map[uuid.UUID]shared.CategorySnapshot
	rooms        map[uuid.UUID]shared.RoomSnapshot
	customers    map[uuid.UUID]shared.CustomerSnapshot
	reservations map[uuid.UUID]*reservation.Reservation
	intents      map[uuid.UUID]intentRecord
	links        map[pairKey]shared.CustomerHotelLink
	idempotency  map[pairKey]shared.IdempotencyRecord
	users        map[uuid.UUID]*user.User
}

func newMemState() memState {
	return memState{
		hotels:       map[uuid.UUID]shared.HotelSnapshot{},
		categories:   map[uuid.UUID]shared.CategorySnapshot{},
		rooms:        map[uuid.UUID]shared.RoomSnapshot{},
		customers:    map[uuid.UUID]shared.CustomerSnapshot{},
		reservations: map[uuid.UUID]*reservation.Reservation{},
		intents:      map[uuid.UUID]intentRecord{},
		links:        map[pairKey]shared.CustomerHotelLink{},
		idempotency:  map[pairKey]shared.IdempotencyRecord{},
		users:        map[uuid.UUID]*user.User{},
	}
}

func (s memState) clone() memState {
	return memState{
		hotels:       maps.Clone(s.hotels),
		categories:   maps.Clone(s.categories),
		rooms:        maps.Clone(s.rooms),
		customers:    maps.Clone(s.customers),
		reservations: maps.Clone(s.reservations),
		intents:      maps.Clone(s.intents),
		links:        maps.Clone(s.links),
		idempotency:  maps.Clone(s.idempotency),
		users:        maps.Clone(s.users),
	}
}

// memUoW is an in-memory UnitOfWork. A failed closure restores the state it
// started from, like a rolled back transaction.
type memUoW struct {
	mu    sync.Mutex
	clock clock.Clock
	state memState

	failReservationCreate error
	failReservationDelete error
	failCustomerDelete    error
	serializable          int
}

func newMemUoW(clk clock.Clock) *memUoW {
	return &memUoW{clock: clk, state: newMemState()}
}

var _ shared.UnitOfWork = (*memUoW)(nil)

func (u *memUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.run(ctx, fn)
}

func (u *memUoW) WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.serializable++
	return u.run(ctx, fn)
}

func (u *memUoW) run(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	saved := u.state.clone()
	if err := fn(ctx, &memTx{u: u}); err != nil {
		u.state = saved
		return err
	}
	return nil
}

func (u *memUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *memUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *memUoW) CommandReads() shared.CommandReads {
	return &memReads{u: u, lock: true}
}

// snapshot copies the state for assertions.
func (u *memUoW) snapshot() memState {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state.clone()
}

func (u *memUoW) intentsFor(customerID uuid.UUID) []intentRecord {
	s := u.snapshot()
	var out []intentRecord
	for _, r := range s.intents {
		if r.customerID == customerID {
			out = append(out, r)
		}
	}
	return out
}

func (u *memUoW) linksFor(customerID uuid.UUID) []shared.CustomerHotelLink {
	s := u.snapshot()
	var out []shared.CustomerHotelLink
	for _, l := range s.links {
		if l.CustomerID == customerID {
			out = append(out, l)
		}
	}
	return out
}

type memTx struct{ u *memUoW }

func (t *memTx) Hotels() shared.HotelRepository             { return memHotels{t.u} }
func (t *memTx) Rooms() shared.RoomRepository               { return memRooms{t.u} }
func (t *memTx) Customers() shared.CustomerRepository       { return memCustomers{t.u} }
func (t *memTx) Provisioning() shared.ProvisioningRepository { return memProvisioning{t.u} }
func (t *memTx) Reservations() shared.ReservationRepository { return memReservations{t.u} }
func (t *memTx) Idempotency() shared.IdempotencyRepository   { return memIdempotency{t.u} }
func (t *memTx) Users() shared.UserRepository               { return memUsers{t.u} }
func (t *memTx) Reads() shared.CommandReads                 { return &memReads{u: t.u} }
func (t *memTx) DB() sqlc.DBTX                              { return nil }

type memReads struct {
	u    *memUoW
	lock bool
}

func (r *memReads) guard() func() {
	if !r.lock {
		return func() {}
	}
	r.u.mu.Lock()
	return r.u.mu.Unlock
}

func (r *memReads) HotelByID(_ context.Context, id uuid.UUID) (*shared.HotelSnapshot, error) {
	defer r.guard()()
	h, ok := r.u.state.hotels[id]
	if !ok {
		return nil, notFound("hotel")
	}
	return &h, nil
}

func (r *memReads) Hotels(_ context.Context) ([]shared.HotelSnapshot, error) {
	defer r.guard()()
	out := slices.Collect(maps.Values(r.u.state.hotels))
	slices.SortFunc(out, func(a, b shared.HotelSnapshot) int { return cmpString(a.Name, b.Name) })
	return out, nil
}

func (r *memReads) CategoryByID(_ context.Context, id uuid.UUID) (*shared.CategorySnapshot, error) {
	defer r.guard()()
	c, ok := r.u.state.categories[id]
	if !ok {
		return nil, notFound("category")
	}
	return &c, nil
}

func (r *memReads) RoomByID(_ context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	defer r.guard()()
	rm, ok := r.u.state.rooms[id]
	if !ok {
		return nil, notFound("room")
	}
	return &rm, nil
}

func (r *memReads) RoomNumberTaken(_ context.Context, hotelID uuid.UUID, number int32) (bool, error) {
	defer r.guard()()
	for _, rm := range r.u.state.rooms {
		if rm.HotelID == hotelID && rm.Number == number {
			return true, nil
		}
	}
	return false, nil
}

func (r *memReads) CustomerByID(_ context.Context, id uuid.UUID) (*shared.CustomerSnapshot, error) {
	defer r.guard()()
	c, ok := r.u.state.customers[id]
	if !ok {
		return nil, notFound("customer")
	}
	return &c, nil
}

func (r *memReads) CustomerIdentityTaken(_ context.Context, document, username string) (bool, error) {
	defer r.guard()()
	for _, c := range r.u.state.customers {
		if c.Document == document || c.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *memReads) ReservationByID(_ context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	defer r.guard()()
	res, ok := r.u.state.reservations[id]
	if !ok {
		return nil, notFound("reservation")
	}
	return &shared.ReservationSnapshot{ID: res.ID(), HotelID: res.HotelID(), RoomID: res.RoomID(), CustomerID: res.CustomerID()}, nil
}

func (r *memReads) IdempotencyByKey(_ context.Context, key, actorID uuid.UUID) (*shared.IdempotencyRecord, error) {
	defer r.guard()()
	rec, ok := r.u.state.idempotency[pairKey{key, actorID}]
	if !ok {
		return nil, notFound("idempotency key")
	}
	return &rec, nil
}

type memHotels struct{ u *memUoW }

func (m memHotels) Create(_ context.Context, _ sqlc.DBTX, h *hotel.Hotel) error {
	for _, existing := range m.u.state.hotels {
		if existing.Name == h.Name() {
			return duplicate("hotel")
		}
	}
	m.u.state.hotels[h.ID()] = shared.HotelSnapshot{ID: h.ID(), Name: h.Name(), ProviderKey: h.ProviderKey()}
	return nil
}

func (m memHotels) CreateCategory(_ context.Context, _ sqlc.DBTX, c *hotel.Category) error {
	if _, ok := m.u.state.hotels[c.HotelID()]; !ok {
		return fkViolation("hotel")
	}
	m.u.state.categories[c.ID()] = shared.CategorySnapshot{ID: c.ID(), HotelID: c.HotelID(), Name: c.Name()}
	return nil
}

type memRooms struct{ u *memUoW }

func roomSnapshot(r *room.Room) shared.RoomSnapshot {
	return shared.RoomSnapshot{
		ID:           r.ID(),
		HotelID:      r.HotelID(),
		CategoryID:   r.CategoryID(),
		Number:       r.Number(),
		OutOfService: r.OutOfService(),
		Description:  r.Description(),
		AreaSqm:      r.AreaSqm(),
		CreatedAt:    r.CreatedAt(),
		UpdatedAt:    r.UpdatedAt(),
	}
}

func (m memRooms) Create(_ context.Context, _ sqlc.DBTX, r *room.Room) error {
	for _, existing := range m.u.state.rooms {
		if existing.HotelID == r.HotelID() && existing.Number == r.Number() {
			return duplicate("room")
		}
	}
	m.u.state.rooms[r.ID()] = roomSnapshot(r)
	return nil
}

func (m memRooms) Update(_ context.Context, _ sqlc.DBTX, r *room.Room) error {
	if _, ok := m.u.state.rooms[r.ID()]; !ok {
		return notFound("room")
	}
	m.u.state.rooms[r.ID()] = roomSnapshot(r)
	return nil
}

func (m memRooms) Delete(_ context.Context, _ sqlc.DBTX, id uuid.UUID) error {
	if _, ok := m.u.state.rooms[id]; !ok {
		return notFound("room")
	}
	for _, res := range m.u.state.reservations {
		if res.RoomID() == id {
			return fkViolation("room")
		}
	}
	delete(m.u.state.rooms, id)
	return nil
}

type memCustomers struct{ u *memUoW }

func (m memCustomers) Create(_ context.Context, _ sqlc.DBTX, c *customer.Customer) error {
	for _, existing := range m.u.state.customers {
		if existing.Document == c.Document() || existing.Username == c.Username() {
			return duplicate("customer")
		}
	}
	m.u.state.customers[c.ID()] = shared.CustomerSnapshot{
		ID:        c.ID(),
		Name:      c.Name(),
		Surname:   c.Surname(),
		Document:  c.Document(),
		Username:  c.Username(),
		Phone:     c.Phone(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
	return nil
}

func (m memCustomers) UpdateContact(_ context.Context, _ sqlc.DBTX, c *customer.Customer) error {
	snap, ok := m.u.state.customers[c.ID()]
	if !ok {
		return notFound("customer")
	}
	snap.Name, snap.Surname, snap.Phone = c.Name(), c.Surname(), c.Phone()
	m.u.state.customers[c.ID()] = snap
	return nil
}

func (m memCustomers) Lock(_ context.Context, _ sqlc.DBTX, id uuid.UUID) error {
	if _, ok := m.u.state.customers[id]; !ok {
		return notFound("customer")
	}
	return nil
}

func (m memCustomers) Delete(_ context.Context, _ sqlc.DBTX, id uuid.UUID) error {
	if m.u.failCustomerDelete != nil {
		return m.u.failCustomerDelete
	}
	if _, ok := m.u.state.customers[id]; !ok {
		return notFound("customer")
	}
	for _, res := range m.u.state.reservations {
		if res.CustomerID() == id {
			return fkViolation("customer")
		}
	}
	delete(m.u.state.customers, id)
	return nil
}

type memProvisioning struct{ u *memUoW }

func (m memProvisioning) CreateIntents(_ context.Context, _ sqlc.DBTX, intents []*provisioning.Intent) error {
	for _, in := range intents {
		exists := false
		for _, r := range m.u.state.intents {
			if r.customerID == in.CustomerID() && r.hotelID == in.HotelID() {
				exists = true
				break
			}
		}
		if exists {
			continue
		}
		m.u.state.intents[in.ID()] = intentRecord{
			id:         in.ID(),
			customerID: in.CustomerID(),
			hotelID:    in.HotelID(),
			step:       in.Step(),
		}
	}
	return nil
}

func (m memProvisioning) ListIntents(_ context.Context, _ sqlc.DBTX, customerID uuid.UUID) ([]*provisioning.Intent, error) {
	var records []intentRecord
	for _, r := range m.u.state.intents {
		if r.customerID == customerID {
			records = append(records, r)
		}
	}
	slices.SortFunc(records, func(a, b intentRecord) int { return cmpString(a.hotelID.String(), b.hotelID.String()) })

	out := make([]*provisioning.Intent, len(records))
	for i, r := range records {
		out[i] = r.toDomain()
	}
	return out, nil
}

func (m memProvisioning) SaveIntent(_ context.Context, _ sqlc.DBTX, in *provisioning.Intent) error {
	if _, ok := m.u.state.intents[in.ID()]; !ok {
		return notFound("intent")
	}
	m.u.state.intents[in.ID()] = intentRecord{
		id:         in.ID(),
		customerID: in.CustomerID(),
		hotelID:    in.HotelID(),
		step:       in.Step(),
		providerID: in.ProviderCustomerID(),
		attempts:   in.Attempts(),
		lastError:  in.LastError(),
	}
	return nil
}

func (m memProvisioning) DeleteIntents(_ context.Context, _ sqlc.DBTX, customerID uuid.UUID) (int64, error) {
	var n int64
	for id, r := range m.u.state.intents {
		if r.customerID == customerID {
			delete(m.u.state.intents, id)
			n++
		}
	}
	return n, nil
}

func (m memProvisioning) OutstandingCustomers(_ context.Context, _ sqlc.DBTX, maxAttempts, limit int32) ([]uuid.UUID, error) {
	seen := map[uuid.UUID]bool{}
	var out []uuid.UUID
	for _, r := range m.u.state.intents {
		if r.step == provisioning.StepCompleted || seen[r.customerID] {
			continue
		}
		if maxAttempts > 0 && r.attempts >= maxAttempts {
			continue
		}
		seen[r.customerID] = true
		out = append(out, r.customerID)
	}
	slices.SortFunc(out, func(a, b uuid.UUID) int { return cmpString(a.String(), b.String()) })
	if int32(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m memProvisioning) UpsertLink(_ context.Context, _ sqlc.DBTX, link shared.CustomerHotelLink) error {
	m.u.state.links[pairKey{link.CustomerID, link.HotelID}] = link
	return nil
}

func (m memProvisioning) ListLinks(_ context.Context, _ sqlc.DBTX, customerID uuid.UUID) ([]shared.CustomerHotelLink, error) {
	var out []shared.CustomerHotelLink
	for _, l := range m.u.state.links {
		if l.CustomerID == customerID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m memProvisioning) DeleteLinks(_ context.Context, _ sqlc.DBTX, customerID uuid.UUID) (int64, error) {
	var n int64
	for k, l := range m.u.state.links {
		if l.CustomerID == customerID {
			delete(m.u.state.links, k)
			n++
		}
	}
	return n, nil
}

type memReservations struct{ u *memUoW }

func (m memReservations) LockRoom(context.Context, sqlc.DBTX, uuid.UUID) error { return nil }

func (m memReservations) StaysByRoom(_ context.Context, _ sqlc.DBTX, roomID, hotelID uuid.UUID) ([]reservation.Stay, error) {
	var out []reservation.Stay
	for _, res := range m.u.state.reservations {
		if res.RoomID() == roomID && res.HotelID() == hotelID {
			out = append(out, res.Stay())
		}
	}
	return out, nil
}

func (m memReservations) Create(_ context.Context, _ sqlc.DBTX, res *reservation.Reservation) error {
	if m.u.failReservationCreate != nil {
		return m.u.failReservationCreate
	}
	m.u.state.reservations[res.ID()] = res
	return nil
}

func (m memReservations) Delete(_ context.Context, _ sqlc.DBTX, id uuid.UUID) error {
	if m.u.failReservationDelete != nil {
		return m.u.failReservationDelete
	}
	if _, ok := m.u.state.reservations[id]; !ok {
		return notFound("reservation")
	}
	delete(m.u.state.reservations, id)
	return nil
}

type memIdempotency struct{ u *memUoW }

func (m memIdempotency) TryInsert(_ context.Context, _ sqlc.DBTX, key, actorID uuid.UUID, _ string, requestHash string, expiresAt time.Time) (bool, error) {
	k := pairKey{key, actorID}
	if _, ok := m.u.state.idempotency[k]; ok {
		return false, nil
	}
	m.u.state.idempotency[k] = shared.IdempotencyRecord{
		Key:         key,
		ActorID:     actorID,
		Status:      shared.IdempotencyStatusProcessing,
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}
	return true, nil
}

func (m memIdempotency) ClaimExpired(_ context.Context, _ sqlc.DBTX, key, actorID uuid.UUID, requestHash string, expiresAt time.Time) (bool, error) {
	k := pairKey{key, actorID}
	rec, ok := m.u.state.idempotency[k]
	if !ok || rec.ExpiresAt.After(m.u.clock.Now()) {
		return false, nil
	}
	m.u.state.idempotency[k] = shared.IdempotencyRecord{
		Key:         key,
		ActorID:     actorID,
		Status:      shared.IdempotencyStatusProcessing,
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}
	return true, nil
}

func (m memIdempotency) MarkCompleted(_ context.Context, _ sqlc.DBTX, key, actorID uuid.UUID, _ string, reservationID uuid.UUID) error {
	k := pairKey{key, actorID}
	rec, ok := m.u.state.idempotency[k]
	if !ok {
		return notFound("idempotency key")
	}
	rec.Status = shared.IdempotencyStatusCompleted
	rec.ResultReservationID = &reservationID
	m.u.state.idempotency[k] = rec
	return nil
}

func (m memIdempotency) DeleteExpired(context.Context, sqlc.DBTX) (int64, error) { return 0, nil }

type memUsers struct{ u *memUoW }

func (m memUsers) Create(_ context.Context, _ sqlc.DBTX, usr *user.User) (uuid.UUID, error) {
	for _, existing := range m.u.state.users {
		if existing.Email() == usr.Email() {
			return uuid.Nil, duplicate("user")
		}
	}
	m.u.state.users[usr.ID()] = usr
	return usr.ID(), nil
}

func (m memUsers) UpdateLastLogin(context.Context, sqlc.DBTX, uuid.UUID) error { return nil }

// memDirectory lists hotels straight from the store; err simulates an
// unavailable directory.
type memDirectory struct {
	u   *memUoW
	err error
}

func (d *memDirectory) Hotels(ctx context.Context) ([]shared.HotelSnapshot, error) {
	if d.err != nil {
		return nil, d.err
	}
	return d.u.CommandReads().Hotels(ctx)
}

// errRejected stands for a provider error that retrying cannot fix, such
// as a revoked key.
var errRejected = errors.New("provider rejected the request")

// fakeProvider mimics provider idempotency: a repeated create key returns
// the customer created the first time.
type fakeProvider struct {
	mu          sync.Mutex
	seq         int
	byKey       map[string]string
	live        map[string]string
	owner       map[string]uuid.UUID
	attached    map[string]bool
	deleted     []string
	createCalls map[string]int
	failCreate  map[string]error
	failAttach  map[string]error
	loseCreate  map[string]bool
	failDelete  error
	failFind    error
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		byKey:       map[string]string{},
		live:        map[string]string{},
		owner:       map[string]uuid.UUID{},
		attached:    map[string]bool{},
		createCalls: map[string]int{},
		failCreate:  map[string]error{},
		failAttach:  map[string]error{},
		loseCreate:  map[string]bool{},
	}
}

func (p *fakeProvider) CreateCustomer(_ context.Context, providerKey string, profile shared.ProviderProfile, idempotencyKey string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.createCalls[providerKey]++
	if err := p.failCreate[providerKey]; err != nil {
		return "", err
	}
	if id, ok := p.byKey[idempotencyKey]; ok {
		return id, nil
	}
	p.seq++
	id := fmt.Sprintf("cus_%d", p.seq)
	p.byKey[idempotencyKey] = id
	p.live[id] = providerKey
	p.owner[id] = profile.CustomerID
	if p.loseCreate[providerKey] {
		return "", context.DeadlineExceeded
	}
	return id, nil
}

func (p *fakeProvider) FindCustomers(_ context.Context, providerKey string, customerID uuid.UUID) ([]string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failFind != nil {
		return nil, p.failFind
	}
	out := []string{}
	for id, key := range p.live {
		if key == providerKey && p.owner[id] == customerID {
			out = append(out, id)
		}
	}
	slices.Sort(out)
	return out, nil
}

func (p *fakeProvider) IsTransient(err error) bool {
	return !errors.Is(err, errRejected)
}

func (p *fakeProvider) AttachDefaultPaymentMethod(_ context.Context, providerKey, providerCustomerID, _ string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.failAttach[providerKey]; err != nil {
		return err
	}
	p.attached[providerCustomerID] = true
	return nil
}

func (p *fakeProvider) DeleteCustomer(_ context.Context, _ string, providerCustomerID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failDelete != nil {
		return p.failDelete
	}
	delete(p.live, providerCustomerID)
	p.deleted = append(p.deleted, providerCustomerID)
	return nil
}

func (p *fakeProvider) liveCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.live)
}

func (p *fakeProvider) calls(providerKey string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.createCalls[providerKey]
}

func (p *fakeProvider) setFailCreate(providerKey string, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failCreate[providerKey] = err
}

func (p *fakeProvider) setLoseCreate(providerKey string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loseCreate[providerKey] = true
}

func (p *fakeProvider) setFailFind(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failFind = err
}

func (p *fakeProvider) isLive(providerCustomerID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.live[providerCustomerID]
	return ok
}

func (p *fakeProvider) setFailAttach(providerKey string, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failAttach[providerKey] = err
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []shared.ProvisioningIncomplete
}

func (p *recordingPublisher) PublishProvisioningIncomplete(_ context.Context, ev shared.ProvisioningIncomplete) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return nil
}

func (p *recordingPublisher) published() []shared.ProvisioningIncomplete {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.events)
}

func cmpString(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
