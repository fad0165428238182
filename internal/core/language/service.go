// Copyright (c) 2026 Bookmanager. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package language

import (
	"context"
	"sync"
)

// Service serves the language set. The set is loaded once and cached; it only
// changes through migrations, which require a restart.
type Service struct {
	repo Repository

	mu  sync.Mutex
	set *Set
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (service *Service) ListLanguages(context context.Context) ([]*Language, error) {
	set, err := service.Set(context)
	if err != nil {
		return nil, err
	}
	return set.List(), nil
}

func (service *Service) GetLanguage(context context.Context, code string) (*Language, error) {
	return service.repo.GetLanguageByCode(context, code)
}

// Set returns the cached language set, loading it on first use.
//
// A failed load is not cached so the next call retries.
func (service *Service) Set(context context.Context) (*Set, error) {
	service.mu.Lock()
	defer service.mu.Unlock()

	if service.set != nil {
		return service.set, nil
	}

	languages, err := service.repo.ListLanguages(context)
	if err != nil {
		return nil, err
	}

	service.set = NewSet(languages)
	return service.set, nil
}
