package flow

// validateTerminals checks that source and sink are nodes of nw.
func validateTerminals(nw *Network, source, sink int) error {
	if source < 0 || source >= nw.Nodes() {
		return ErrSourceNotFound
	}
	if sink < 0 || sink >= nw.Nodes() {
		return ErrSinkNotFound
	}

	return nil
}

// push moves f units along adj[u][i] and credits its reverse arc.
func (nw *Network) push(u, i int, f int64) {
	a := &nw.adj[u][i]
	a.cap -= f
	nw.adj[a.to][a.rev].cap += f
}
