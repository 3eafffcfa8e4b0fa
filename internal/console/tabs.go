// Package console contiene los controladores de la consola de administración:
// pestañas, paginación y los enums de navegación.
package console

// Tabs controla una pestaña activa de tipo T. El valor puede venir de dos
// fuentes: una selección explícita del usuario (Select) o un valor externo
// que manda sobre el estado interno (Sync, sincronización de una sola vía).
type Tabs[T comparable] struct {
	active T
}

// NewTabs construye el controlador con la pestaña inicial.
func NewTabs[T comparable](initial T) *Tabs[T] {
	return &Tabs[T]{active: initial}
}

// Active devuelve la pestaña activa.
func (t *Tabs[T]) Active() T {
	return t.active
}

// Select cambia la pestaña activa. Devuelve true si hubo cambio.
func (t *Tabs[T]) Select(tab T) bool {
	if t.active == tab {
		return false
	}
	t.active = tab
	return true
}

// Sync impone el valor externo sobre el estado interno. La sincronización es
// de una sola vía: el externo manda, el interno nunca lo sobreescribe.
func (t *Tabs[T]) Sync(external T) {
	t.active = external
}
