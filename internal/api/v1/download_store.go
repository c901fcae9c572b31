package v1

import (
	"crypto/rand"
	"encoding/base64"
	"sync"
	"time"
)

type packDownload struct {
	filePath    string
	fileName    string
	contentType string
	expiresAt   time.Time
}

// packDownloadStore 审计包下载令牌存储
// 导出完成后发放一次性令牌，带 TTL 自动清理
type packDownloadStore struct {
	mu    sync.Mutex
	items map[string]packDownload
}

func newPackDownloadStore() *packDownloadStore {
	return &packDownloadStore{
		items: make(map[string]packDownload),
	}
}

func (s *packDownloadStore) put(filePath, fileName, contentType string, ttl time.Duration) (token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpiredLocked(time.Now())

	token = newRandomToken(24)
	s.items[token] = packDownload{
		filePath:    filePath,
		fileName:    fileName,
		contentType: contentType,
		expiresAt:   time.Now().Add(ttl),
	}
	return token
}

func (s *packDownloadStore) get(token string) (packDownload, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpiredLocked(time.Now())

	v, ok := s.items[token]
	if !ok {
		return packDownload{}, false
	}
	if time.Now().After(v.expiresAt) {
		delete(s.items, token)
		return packDownload{}, false
	}
	return v, true
}

func (s *packDownloadStore) delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, token)
}

func (s *packDownloadStore) purgeExpiredLocked(now time.Time) {
	for k, v := range s.items {
		if now.After(v.expiresAt) {
			delete(s.items, k)
		}
	}
}

func newRandomToken(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}
