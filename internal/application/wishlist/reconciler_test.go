package wishlist

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/CompraGlobal-api/internal/domain"
	"github.com/jhoicas/CompraGlobal-api/internal/domain/entity"
	"github.com/jhoicas/CompraGlobal-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// fakeRemote wishlist remota en memoria con contadores de llamadas.
type fakeRemote struct {
	mu      sync.Mutex
	items   map[string]int64 // productID -> remoteID
	nextID  int64
	listErr error
	addErr  error

	listCalls   int
	addCalls    int
	removeCalls int

	// onList se dispara una sola vez, tras construir la respuesta del List y
	// antes de devolverla: permite intercalar un toggle "durante" el fetch.
	onList func()

	// onAdd se dispara una sola vez, tras resolver un alta en el servidor.
	onAdd func()

	// alreadyExists simula la respuesta "el ítem ya existe" del servidor para
	// los productos indicados, con el id que el servidor devuelve.
	alreadyExists map[string]int64
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{items: make(map[string]int64), nextID: 100}
}

func (f *fakeRemote) List(_ context.Context, _ string, offset, limit int) ([]entity.WishlistEntry, error) {
	f.mu.Lock()
	f.listCalls++
	if f.listErr != nil {
		err := f.listErr
		f.mu.Unlock()
		return nil, err
	}
	all := make([]entity.WishlistEntry, 0, len(f.items))
	for pid, rid := range f.items {
		all = append(all, entity.WishlistEntry{ProductID: pid, RemoteID: rid})
	}
	// Orden estable para que la paginación por offset sea determinista.
	sort.Slice(all, func(i, j int) bool { return all[i].ProductID < all[j].ProductID })
	cb := f.onList
	f.onList = nil
	f.mu.Unlock()

	if cb != nil {
		cb()
	}
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (f *fakeRemote) Add(_ context.Context, _ string, item AddItem) (AddResult, error) {
	f.mu.Lock()
	f.addCalls++
	if f.addErr != nil {
		err := f.addErr
		f.mu.Unlock()
		return AddResult{}, err
	}
	if rid, ok := f.alreadyExists[item.ProductID]; ok {
		f.mu.Unlock()
		return AddResult{RemoteID: rid, AlreadyExists: true}, nil
	}
	f.nextID++
	f.items[item.ProductID] = f.nextID
	res := AddResult{RemoteID: f.nextID}
	cb := f.onAdd
	f.onAdd = nil
	f.mu.Unlock()

	if cb != nil {
		cb()
	}
	return res, nil
}

func (f *fakeRemote) Remove(_ context.Context, _ string, remoteID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removeCalls++
	for pid, rid := range f.items {
		if rid == remoteID {
			delete(f.items, pid)
			return nil
		}
	}
	return nil
}

// fakeStorage puerto get/set/remove en memoria para tests.
type fakeStorage struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{data: make(map[string][]byte)}
}

func (s *fakeStorage) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *fakeStorage) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	s.data[key] = value
	s.mu.Unlock()
	return nil
}

func (s *fakeStorage) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}

// gatedStorage retiene la primera escritura tras armarse: deja a un refresco
// detenido entre su fetch remoto y la escritura del snapshot.
type gatedStorage struct {
	*fakeStorage
	gateMu  sync.Mutex
	armed   bool
	entered chan struct{}
	release chan struct{}
}

func newGatedStorage() *gatedStorage {
	return &gatedStorage{
		fakeStorage: newFakeStorage(),
		entered:     make(chan struct{}),
		release:     make(chan struct{}),
	}
}

func (s *gatedStorage) arm() {
	s.gateMu.Lock()
	s.armed = true
	s.gateMu.Unlock()
}

func (s *gatedStorage) Set(ctx context.Context, key string, value []byte) error {
	s.gateMu.Lock()
	hold := s.armed
	s.armed = false
	s.gateMu.Unlock()
	if hold {
		close(s.entered)
		<-s.release
	}
	return s.fakeStorage.Set(ctx, key, value)
}

// newTestReconciler reconciliador con reloj controlable.
func newTestReconciler(remote Remote) (*Reconciler, *time.Time) {
	r := NewReconciler(remote, newFakeStorage(), DefaultTTL, logger.Nop())
	clock := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return clock }
	return r, &clock
}

const (
	testToken = "tok"
	testUser  = "user-1"
)

func addItem(pid string) AddItem {
	return AddItem{Source: entity.SourceWholesale, ProductID: pid, Title: "Producto " + pid}
}

// ──────────────────────────────────────────────────────────────────────────────
// Toggle — serializado, decidido sobre caché no más vieja que el TTL
// ──────────────────────────────────────────────────────────────────────────────

func TestToggle_SinSesion_RetornaLoginRequired(t *testing.T) {
	r, _ := newTestReconciler(newFakeRemote())
	_, _, err := r.Toggle(context.Background(), "", testUser, addItem("p1"))
	assert.ErrorIs(t, err, domain.ErrLoginRequired)
}

func TestToggle_CacheMiss_RevalidaYDaDeAlta(t *testing.T) {
	remote := newFakeRemote()
	r, _ := newTestReconciler(remote)

	in, rid, err := r.Toggle(context.Background(), testToken, testUser, addItem("p1"))
	require.NoError(t, err)
	assert.True(t, in)
	assert.NotZero(t, rid)
	assert.Equal(t, 1, remote.listCalls, "el miss revalida con un solo list")
	assert.Equal(t, 1, remote.addCalls)
}

func TestToggle_DentroDelTTL_NoVuelveAConsultarExistencia(t *testing.T) {
	remote := newFakeRemote()
	r, _ := newTestReconciler(remote)

	_, rid, err := r.Toggle(context.Background(), testToken, testUser, addItem("p1"))
	require.NoError(t, err)

	// Segundo toggle dentro del TTL: decide con la caché, sin list adicional.
	in, _, err := r.Toggle(context.Background(), testToken, testUser, addItem("p1"))
	require.NoError(t, err)
	assert.False(t, in, "el segundo toggle retira el producto")
	assert.Equal(t, 1, remote.listCalls, "la caché fresca evita revalidar existencia")
	assert.Equal(t, 1, remote.removeCalls)

	_, stillThere := remote.items["p1"]
	assert.False(t, stillThere, "el retiro usa el id remoto %d adoptado en el alta", rid)
}

func TestToggle_TTLVencido_RevalidaAntesDeDecidir(t *testing.T) {
	remote := newFakeRemote()
	r, clock := newTestReconciler(remote)

	_, _, err := r.Toggle(context.Background(), testToken, testUser, addItem("p1"))
	require.NoError(t, err)

	*clock = clock.Add(DefaultTTL + time.Second)

	_, _, err = r.Toggle(context.Background(), testToken, testUser, addItem("p2"))
	require.NoError(t, err)
	assert.Equal(t, 2, remote.listCalls, "con TTL vencido la decisión revalida contra el servidor")
}

func TestToggle_YaExiste_AdoptaElIDDelServidor(t *testing.T) {
	remote := newFakeRemote()
	remote.alreadyExists = map[string]int64{"p1": 777}
	r, _ := newTestReconciler(remote)

	in, rid, err := r.Toggle(context.Background(), testToken, testUser, addItem("p1"))
	require.NoError(t, err, `"ya existe" es un alta exitosa, no un error`)
	assert.True(t, in)
	assert.Equal(t, int64(777), rid, "el servidor es autoritativo sobre el id")
}

func TestToggle_FalloDeRedEnAlta_PropagaElError(t *testing.T) {
	remote := newFakeRemote()
	remote.addErr = domain.ErrUpstreamUnavailable
	r, _ := newTestReconciler(remote)

	_, _, err := r.Toggle(context.Background(), testToken, testUser, addItem("p1"))
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)

	in, err := r.IsMember(context.Background(), testToken, testUser, "p1")
	require.NoError(t, err)
	assert.False(t, in, "un alta fallida no toca la caché local")
}

// ──────────────────────────────────────────────────────────────────────────────
// RefreshAll — atómico, descarta resultados que resuelven tarde
// ──────────────────────────────────────────────────────────────────────────────

func TestRefreshAll_DentroDelTTLSinForce_EsNoop(t *testing.T) {
	remote := newFakeRemote()
	r, _ := newTestReconciler(remote)

	require.NoError(t, r.RefreshAll(context.Background(), testToken, testUser, false))
	require.NoError(t, r.RefreshAll(context.Background(), testToken, testUser, false))
	assert.Equal(t, 1, remote.listCalls, "dentro del TTL el refresco se omite")

	require.NoError(t, r.RefreshAll(context.Background(), testToken, testUser, true))
	assert.Equal(t, 2, remote.listCalls, "force siempre consulta")
}

func TestRefreshAll_ResultadoViejoSeDescarta(t *testing.T) {
	remote := newFakeRemote()
	r, _ := newTestReconciler(remote)
	ctx := context.Background()

	remote.items["p-viejo"] = 1
	// Mientras el primer List del refresco está en vuelo aterriza un toggle:
	// la respuesta del refresco ya no refleja ese toggle.
	remote.onList = func() {
		_, _, err := r.Toggle(ctx, testToken, testUser, addItem("p-nuevo"))
		require.NoError(t, err)
	}

	require.NoError(t, r.RefreshAll(ctx, testToken, testUser, true))

	members, err := r.Members(ctx, testToken, testUser, false)
	require.NoError(t, err)
	assert.Contains(t, members, "p-nuevo",
		"el refresco que resolvió tarde se descarta: la escritura más nueva gana")
	assert.Contains(t, members, "p-viejo")
}

func TestRefreshAll_ToggleResueltoAntesDeEscribir_NoEsPisado(t *testing.T) {
	remote := newFakeRemote()
	storage := newGatedStorage()
	r := NewReconciler(remote, storage, DefaultTTL, logger.Nop())
	clock := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return clock }
	ctx := context.Background()

	_, _, err := r.Toggle(ctx, testToken, testUser, addItem("p-viejo"))
	require.NoError(t, err)

	// Refresco forzado con el fetch ya resuelto y la escritura retenida en la
	// compuerta del storage.
	storage.arm()
	refreshed := make(chan error, 1)
	go func() { refreshed <- r.RefreshAll(ctx, testToken, testUser, true) }()
	<-storage.entered

	// Un toggle resuelve en el servidor con esa escritura todavía pendiente.
	added := make(chan struct{})
	remote.onAdd = func() { close(added) }
	toggled := make(chan error, 1)
	go func() {
		_, _, err := r.Toggle(ctx, testToken, testUser, addItem("p-nuevo"))
		toggled <- err
	}()
	<-added
	time.Sleep(20 * time.Millisecond) // deja al toggle llegar a su commit

	close(storage.release)
	require.NoError(t, <-refreshed)
	require.NoError(t, <-toggled)

	members, err := r.Members(ctx, testToken, testUser, false)
	require.NoError(t, err)
	assert.Contains(t, members, "p-nuevo",
		"el toggle resuelto más nuevo no debe ser pisado por el refresco que resolvió tarde")
	assert.Contains(t, members, "p-viejo")
}

func TestRefreshAll_PaginaCompleta_RecorreTodasLasPaginas(t *testing.T) {
	remote := newFakeRemote()
	for i := 0; i < listPageSize+3; i++ {
		remote.items[fmt.Sprintf("p-%d", i)] = int64(i + 1)
	}
	r, _ := newTestReconciler(remote)

	members, err := r.Members(context.Background(), testToken, testUser, true)
	require.NoError(t, err)
	assert.Len(t, members, listPageSize+3)
	assert.Equal(t, 2, remote.listCalls, "una página llena dispara la lectura de la siguiente")
}

// ──────────────────────────────────────────────────────────────────────────────
// IsMember — caché fresca, revalidación y degradación a caché vencida
// ──────────────────────────────────────────────────────────────────────────────

func TestIsMember_CacheFresca_NoSaleALaRed(t *testing.T) {
	remote := newFakeRemote()
	remote.items["p1"] = 5
	r, _ := newTestReconciler(remote)

	in, err := r.IsMember(context.Background(), testToken, testUser, "p1")
	require.NoError(t, err)
	assert.True(t, in)
	assert.Equal(t, 1, remote.listCalls)

	in, err = r.IsMember(context.Background(), testToken, testUser, "p2")
	require.NoError(t, err)
	assert.False(t, in)
	assert.Equal(t, 1, remote.listCalls, "la segunda consulta responde de la caché")
}

func TestIsMember_RedCaida_UsaCacheVencida(t *testing.T) {
	remote := newFakeRemote()
	remote.items["p1"] = 5
	r, clock := newTestReconciler(remote)

	_, err := r.IsMember(context.Background(), testToken, testUser, "p1")
	require.NoError(t, err)

	*clock = clock.Add(DefaultTTL + time.Second)
	remote.listErr = errors.New("timeout")

	in, err := r.IsMember(context.Background(), testToken, testUser, "p1")
	require.NoError(t, err, "ante fallo de red responde el último estado local conocido")
	assert.True(t, in)
}

func TestIsMember_RedCaidaSinCache_PropagaElError(t *testing.T) {
	remote := newFakeRemote()
	remote.listErr = errors.New("timeout")
	r, _ := newTestReconciler(remote)

	_, err := r.IsMember(context.Background(), testToken, testUser, "p1")
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Evict
// ──────────────────────────────────────────────────────────────────────────────

func TestEvict_BorraLaCacheDelUsuario(t *testing.T) {
	remote := newFakeRemote()
	remote.items["p1"] = 5
	r, _ := newTestReconciler(remote)
	ctx := context.Background()

	_, err := r.IsMember(ctx, testToken, testUser, "p1")
	require.NoError(t, err)

	r.Evict(ctx, testUser)

	_, err = r.IsMember(ctx, testToken, testUser, "p1")
	require.NoError(t, err)
	assert.Equal(t, 2, remote.listCalls, "sin caché la siguiente consulta revalida")
}
