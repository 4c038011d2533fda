package service

func BackendOf(s *Session) RecordBackend {
	return s.Store.backend
}
