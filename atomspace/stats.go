package atomspace

// StatisticsMonitor is the optional §6 collaborator notified of every add
// and remove, mirroring AtomTable.cc's StatisticsMonitor::getInstance()
// calls guarded by useDSA. Unlike the original's process-wide singleton,
// it is injected per table (design note in spec.md §9).
type StatisticsMonitor interface {
	OnAdd(a *Atom)
	OnRemove(a *Atom)
}

// CountingStatistics is a minimal StatisticsMonitor that tallies additions
// and removals per type.
type CountingStatistics struct {
	Added   map[Type]int
	Removed map[Type]int
}

// NewCountingStatistics returns an empty CountingStatistics collaborator.
func NewCountingStatistics() *CountingStatistics {
	return &CountingStatistics{
		Added:   make(map[Type]int),
		Removed: make(map[Type]int),
	}
}

func (s *CountingStatistics) OnAdd(a *Atom) {
	s.Added[a.Type]++
}

func (s *CountingStatistics) OnRemove(a *Atom) {
	s.Removed[a.Type]++
}
