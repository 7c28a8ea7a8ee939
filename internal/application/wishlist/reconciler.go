package wishlist

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/jhoicas/CompraGlobal-api/internal/domain"
	"github.com/jhoicas/CompraGlobal-api/pkg/logger"
)

// DefaultTTL: antigüedad máxima de la caché local antes de revalidar contra la
// wishlist remota para una decisión de toggle.
const DefaultTTL = 30 * time.Second

const listPageSize = 50

// snapshot es la membresía cacheada de un usuario: productID -> remoteID más
// el instante del último refresco completo. Se reemplaza siempre como unidad.
type snapshot struct {
	Items     map[string]int64 `json:"items"`
	FetchedAt time.Time        `json:"fetched_at"`
}

// Reconciler mantiene la caché local de membresía de wishlist contra la fuente
// de verdad remota: consulta remota solo en miss o TTL vencido, toggle
// idempotente, y refresco masivo atómico. Los toggles sobre el mismo producto
// se serializan; un refresco que resuelve tarde (un toggle aterrizó en medio)
// se descarta en lugar de pisar el estado más nuevo.
type Reconciler struct {
	remote  Remote
	storage Storage
	ttl     time.Duration
	log     *logger.Logger

	mu        sync.Mutex
	locks     map[string]*sync.Mutex // por (usuario, producto): un toggle en vuelo a la vez
	userLocks map[string]*sync.Mutex // por usuario: serializa los commits de caché
	gens      map[string]uint64      // por usuario: generación de escritura resuelta

	now func() time.Time
}

// NewReconciler construye el reconciliador. ttl <= 0 usa DefaultTTL.
func NewReconciler(remote Remote, storage Storage, ttl time.Duration, log *logger.Logger) *Reconciler {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Reconciler{
		remote:    remote,
		storage:   storage,
		ttl:       ttl,
		log:       log,
		locks:     make(map[string]*sync.Mutex),
		userLocks: make(map[string]*sync.Mutex),
		gens:      make(map[string]uint64),
		now:       time.Now,
	}
}

func snapshotKey(userID string) string { return "wishlist:" + userID }

func (r *Reconciler) toggleLock(userID, productID string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := userID + "|" + productID
	l, ok := r.locks[key]
	if !ok {
		l = &sync.Mutex{}
		r.locks[key] = l
	}
	return l
}

func (r *Reconciler) userLock(userID string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.userLocks[userID]
	if !ok {
		l = &sync.Mutex{}
		r.userLocks[userID] = l
	}
	return l
}

func (r *Reconciler) generation(userID string) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.gens[userID]
}

func (r *Reconciler) bumpGeneration(userID string) {
	r.mu.Lock()
	r.gens[userID]++
	r.mu.Unlock()
}

func (r *Reconciler) readSnapshot(ctx context.Context, userID string) (*snapshot, bool) {
	raw, ok, err := r.storage.Get(ctx, snapshotKey(userID))
	if err != nil || !ok {
		return nil, false
	}
	var snap snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, false
	}
	if snap.Items == nil {
		snap.Items = make(map[string]int64)
	}
	return &snap, true
}

func (r *Reconciler) writeSnapshot(ctx context.Context, userID string, snap *snapshot) {
	raw, err := json.Marshal(snap)
	if err != nil {
		return
	}
	if err := r.storage.Set(ctx, snapshotKey(userID), raw); err != nil {
		r.log.Warn().Err(err).Msg("no se pudo persistir la caché de wishlist")
	}
}

// commit aplica una mutación sobre el snapshot más reciente y la persiste como
// escritura resuelta. El lock por usuario lo comparte el commit de RefreshAll:
// chequeo de generación y escritura quedan en la misma sección crítica, así un
// toggle que resuelve entre ambos no puede ser pisado por un refresco viejo.
func (r *Reconciler) commit(ctx context.Context, userID string, mutate func(*snapshot)) {
	lock := r.userLock(userID)
	lock.Lock()
	defer lock.Unlock()
	snap, ok := r.readSnapshot(ctx, userID)
	if !ok {
		snap = &snapshot{Items: make(map[string]int64)}
	}
	mutate(snap)
	r.writeSnapshot(ctx, userID, snap)
	r.bumpGeneration(userID)
}

func (r *Reconciler) fresh(snap *snapshot) bool {
	return snap != nil && r.now().Sub(snap.FetchedAt) < r.ttl
}

// fetchAll recorre la wishlist remota completa por páginas.
func (r *Reconciler) fetchAll(ctx context.Context, token string) (map[string]int64, error) {
	items := make(map[string]int64)
	for offset := 0; ; offset += listPageSize {
		page, err := r.remote.List(ctx, token, offset, listPageSize)
		if err != nil {
			return nil, err
		}
		for _, e := range page {
			items[e.ProductID] = e.RemoteID
		}
		if len(page) < listPageSize {
			return items, nil
		}
	}
}

// RefreshAll trae la wishlist remota completa en una pasada y reemplaza la
// caché local de forma atómica. Dentro del TTL se omite, salvo que el caller
// fuerce (pull-to-refresh y revalidación post-navegación siempre fuerzan).
// Si durante el fetch aterrizó un toggle, el resultado llega viejo y se
// descarta: la escritura resuelta más nueva gana.
func (r *Reconciler) RefreshAll(ctx context.Context, token, userID string, force bool) error {
	if token == "" {
		return domain.ErrLoginRequired
	}
	snap, _ := r.readSnapshot(ctx, userID)
	if !force && r.fresh(snap) {
		return nil
	}

	gen := r.generation(userID)
	items, err := r.fetchAll(ctx, token)
	if err != nil {
		return err
	}
	// Re-chequeo y escritura bajo el mismo lock que usa el commit de Toggle:
	// un toggle que resuelva a partir de aquí espera a que este refresco
	// termine de escribir, y su escritura queda encima.
	lock := r.userLock(userID)
	lock.Lock()
	defer lock.Unlock()
	if r.generation(userID) != gen {
		// Escritura obsoleta: se ignora sin tocar la caché ni avisar al usuario.
		r.log.Debug().Str("user", userID).Msg("refresco de wishlist descartado por escritura más nueva")
		return nil
	}
	r.writeSnapshot(ctx, userID, &snapshot{Items: items, FetchedAt: r.now()})
	return nil
}

// IsMember responde la membresía desde la caché si está fresca; en miss o TTL
// vencido revalida contra la fuente remota con write-through. Ante un fallo de
// red responde con el último estado local conocido.
func (r *Reconciler) IsMember(ctx context.Context, token, userID, productID string) (bool, error) {
	if token == "" {
		return false, domain.ErrLoginRequired
	}
	snap, ok := r.readSnapshot(ctx, userID)
	if ok && r.fresh(snap) {
		_, member := snap.Items[productID]
		return member, nil
	}
	if err := r.RefreshAll(ctx, token, userID, false); err != nil {
		if snap != nil {
			// Último estado bueno conocido; no se bloquea la UI.
			r.log.Warn().Err(err).Str("user", userID).Msg("wishlist remota no disponible, usando caché vencida")
			_, member := snap.Items[productID]
			return member, nil
		}
		return false, err
	}
	snap, _ = r.readSnapshot(ctx, userID)
	if snap == nil {
		return false, nil
	}
	_, member := snap.Items[productID]
	return member, nil
}

// Toggle alterna la membresía del producto. Serializado por (usuario,
// producto): un toggle en vuelo bloquea al siguiente hasta resolverse. La
// decisión de alta/baja nunca se toma sobre una caché más vieja que el TTL.
func (r *Reconciler) Toggle(ctx context.Context, token, userID string, item AddItem) (inWishlist bool, remoteID int64, err error) {
	if token == "" {
		return false, 0, domain.ErrLoginRequired
	}
	lock := r.toggleLock(userID, item.ProductID)
	lock.Lock()
	defer lock.Unlock()

	snap, ok := r.readSnapshot(ctx, userID)
	if !ok || !r.fresh(snap) {
		if err := r.RefreshAll(ctx, token, userID, false); err != nil {
			return false, 0, err
		}
		snap, ok = r.readSnapshot(ctx, userID)
		if !ok {
			snap = &snapshot{Items: make(map[string]int64), FetchedAt: r.now()}
		}
	}

	if existing, member := snap.Items[item.ProductID]; member {
		if err := r.remote.Remove(ctx, token, existing); err != nil {
			return true, existing, err
		}
		r.commit(ctx, userID, func(s *snapshot) { delete(s.Items, item.ProductID) })
		return false, 0, nil
	}

	res, err := r.remote.Add(ctx, token, item)
	if err != nil {
		return false, 0, err
	}
	// "Ya existe" es un alta exitosa: el servidor manda y adoptamos su id.
	r.commit(ctx, userID, func(s *snapshot) { s.Items[item.ProductID] = res.RemoteID })
	return true, res.RemoteID, nil
}

// Members devuelve la membresía completa (caché fresca o refrescada).
func (r *Reconciler) Members(ctx context.Context, token, userID string, force bool) (map[string]int64, error) {
	if err := r.RefreshAll(ctx, token, userID, force); err != nil {
		if snap, ok := r.readSnapshot(ctx, userID); ok {
			r.log.Warn().Err(err).Str("user", userID).Msg("wishlist remota no disponible, usando caché vencida")
			return snap.Items, nil
		}
		return nil, err
	}
	snap, ok := r.readSnapshot(ctx, userID)
	if !ok {
		return map[string]int64{}, nil
	}
	return snap.Items, nil
}

// Evict borra la caché del usuario (logout).
func (r *Reconciler) Evict(ctx context.Context, userID string) {
	if err := r.storage.Remove(ctx, snapshotKey(userID)); err != nil {
		r.log.Warn().Err(err).Msg("no se pudo evictar la caché de wishlist")
	}
}
