package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/angelb-studio/studio-api/internal/core/domain"
	"github.com/angelb-studio/studio-api/internal/core/ports"
)

// In-memory repository stubs shared by the service tests. They reproduce
// the persistence contract: sentinel errors, owner-filtered writes, and
// the Forbidden-vs-NotFound resolution on a filtered miss.

type stubUserRepo struct {
	users map[string]*domain.User
	seq   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, domain.ErrUserExists
		}
	}
	r.seq++
	created := *user
	created.ID = fmt.Sprintf("u%d", r.seq)
	r.users[created.ID] = &created
	return &created, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *stubUserRepo) ListByRole(_ context.Context, role domain.Role) ([]*domain.User, error) {
	out := make([]*domain.User, 0)
	for _, u := range r.users {
		if u.Role == role {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, upd ports.UpdateUser) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if upd.FullName != nil {
		u.FullName = *upd.FullName
	}
	if upd.Username != nil {
		u.Username = *upd.Username
	}
	cp := *u
	return &cp, nil
}

func (r *stubUserRepo) UpdateRole(_ context.Context, id string, role domain.Role) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Role = role
	cp := *u
	return &cp, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) CountByRole(_ context.Context, role domain.Role) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (r *stubUserRepo) add(id, username, fullName string, role domain.Role) *domain.User {
	u := &domain.User{ID: id, Username: username, FullName: fullName, Role: role, CreatedAt: time.Now().UTC()}
	r.users[id] = u
	return u
}

type stubArtworkRepo struct {
	artworks map[string]*domain.Artwork
	seq      int
}

func newStubArtworkRepo() *stubArtworkRepo {
	return &stubArtworkRepo{artworks: make(map[string]*domain.Artwork)}
}

func (r *stubArtworkRepo) Insert(_ context.Context, a *domain.Artwork) (*domain.Artwork, error) {
	r.seq++
	created := *a
	created.ID = fmt.Sprintf("a%d", r.seq)
	r.artworks[created.ID] = &created
	cp := created
	return &cp, nil
}

func (r *stubArtworkRepo) FindByID(_ context.Context, id string) (*domain.Artwork, error) {
	a, ok := r.artworks[id]
	if !ok {
		return nil, domain.ErrArtworkNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *stubArtworkRepo) OwnerID(_ context.Context, id string) (string, error) {
	a, ok := r.artworks[id]
	if !ok {
		return "", domain.ErrArtworkNotFound
	}
	return a.OwnerID, nil
}

func (r *stubArtworkRepo) List(_ context.Context) ([]*domain.Artwork, error) {
	out := make([]*domain.Artwork, 0, len(r.artworks))
	for _, a := range r.artworks {
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func (r *stubArtworkRepo) ListFeatured(_ context.Context) ([]*domain.Artwork, error) {
	out := make([]*domain.Artwork, 0)
	for _, a := range r.artworks {
		if a.Featured {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *stubArtworkRepo) ListByOwner(_ context.Context, ownerID string) ([]*domain.Artwork, error) {
	out := make([]*domain.Artwork, 0)
	for _, a := range r.artworks {
		if a.OwnerID == ownerID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *stubArtworkRepo) ListBySection(_ context.Context, sectionID string) ([]*domain.Artwork, error) {
	out := make([]*domain.Artwork, 0)
	for _, a := range r.artworks {
		if a.SectionID == sectionID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *stubArtworkRepo) Update(_ context.Context, id, ownerID string, upd ports.UpdateArtwork) (*domain.Artwork, error) {
	a, ok := r.artworks[id]
	if !ok {
		return nil, domain.ErrArtworkNotFound
	}
	if ownerID != "" && a.OwnerID != ownerID {
		return nil, domain.ErrForbidden
	}
	if upd.Title != nil {
		a.Title = *upd.Title
	}
	if upd.Description != nil {
		a.Description = *upd.Description
	}
	if upd.ImageURL != nil {
		a.ImageURL = *upd.ImageURL
	}
	if upd.SectionID != nil {
		a.SectionID = *upd.SectionID
	}
	if upd.Featured != nil {
		a.Featured = *upd.Featured
	}
	cp := *a
	return &cp, nil
}

func (r *stubArtworkRepo) Delete(_ context.Context, id, ownerID string) error {
	a, ok := r.artworks[id]
	if !ok {
		return domain.ErrArtworkNotFound
	}
	if ownerID != "" && a.OwnerID != ownerID {
		return domain.ErrForbidden
	}
	delete(r.artworks, id)
	return nil
}

func (r *stubArtworkRepo) DeleteByOwner(_ context.Context, ownerID string) (int64, error) {
	var n int64
	for id, a := range r.artworks {
		if a.OwnerID == ownerID {
			delete(r.artworks, id)
			n++
		}
	}
	return n, nil
}

func (r *stubArtworkRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.artworks)), nil
}

type stubPostRepo struct {
	posts map[string]*domain.BlogPost
	seq   int
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{posts: make(map[string]*domain.BlogPost)}
}

func (r *stubPostRepo) Insert(_ context.Context, p *domain.BlogPost) (*domain.BlogPost, error) {
	r.seq++
	created := *p
	created.ID = fmt.Sprintf("p%d", r.seq)
	r.posts[created.ID] = &created
	cp := created
	return &cp, nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id string) (*domain.BlogPost, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubPostRepo) OwnerID(_ context.Context, id string) (string, error) {
	p, ok := r.posts[id]
	if !ok {
		return "", domain.ErrPostNotFound
	}
	return p.OwnerID, nil
}

func (r *stubPostRepo) List(_ context.Context) ([]*domain.BlogPost, error) {
	out := make([]*domain.BlogPost, 0, len(r.posts))
	for _, p := range r.posts {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *stubPostRepo) ListLatest(_ context.Context, limit int) ([]*domain.BlogPost, error) {
	out := make([]*domain.BlogPost, 0, len(r.posts))
	for _, p := range r.posts {
		cp := *p
		out = append(out, &cp)
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubPostRepo) ListByOwner(_ context.Context, ownerID string) ([]*domain.BlogPost, error) {
	out := make([]*domain.BlogPost, 0)
	for _, p := range r.posts {
		if p.OwnerID == ownerID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *stubPostRepo) ListBySection(_ context.Context, sectionID string) ([]*domain.BlogPost, error) {
	out := make([]*domain.BlogPost, 0)
	for _, p := range r.posts {
		if p.SectionID == sectionID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *stubPostRepo) Update(_ context.Context, id, ownerID string, upd ports.UpdatePost) (*domain.BlogPost, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	if ownerID != "" && p.OwnerID != ownerID {
		return nil, domain.ErrForbidden
	}
	if upd.Title != nil {
		p.Title = *upd.Title
	}
	if upd.Content != nil {
		p.Content = *upd.Content
	}
	if upd.SectionID != nil {
		p.SectionID = *upd.SectionID
	}
	cp := *p
	return &cp, nil
}

func (r *stubPostRepo) Delete(_ context.Context, id, ownerID string) error {
	p, ok := r.posts[id]
	if !ok {
		return domain.ErrPostNotFound
	}
	if ownerID != "" && p.OwnerID != ownerID {
		return domain.ErrForbidden
	}
	delete(r.posts, id)
	return nil
}

func (r *stubPostRepo) DeleteByOwner(_ context.Context, ownerID string) (int64, error) {
	var n int64
	for id, p := range r.posts {
		if p.OwnerID == ownerID {
			delete(r.posts, id)
			n++
		}
	}
	return n, nil
}

func (r *stubPostRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.posts)), nil
}

type stubWellnessRepo struct {
	entries map[string]*domain.WellnessEntry
	seq     int
}

func newStubWellnessRepo() *stubWellnessRepo {
	return &stubWellnessRepo{entries: make(map[string]*domain.WellnessEntry)}
}

func (r *stubWellnessRepo) Insert(_ context.Context, e *domain.WellnessEntry) (*domain.WellnessEntry, error) {
	r.seq++
	created := *e
	created.ID = fmt.Sprintf("w%d", r.seq)
	r.entries[created.ID] = &created
	cp := created
	return &cp, nil
}

func (r *stubWellnessRepo) FindByID(_ context.Context, id string) (*domain.WellnessEntry, error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, domain.ErrEntryNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *stubWellnessRepo) OwnerID(_ context.Context, id string) (string, error) {
	e, ok := r.entries[id]
	if !ok {
		return "", domain.ErrEntryNotFound
	}
	return e.OwnerID, nil
}

func (r *stubWellnessRepo) ListByOwner(_ context.Context, ownerID string) ([]*domain.WellnessEntry, error) {
	out := make([]*domain.WellnessEntry, 0)
	for _, e := range r.entries {
		if e.OwnerID == ownerID {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *stubWellnessRepo) ListAll(_ context.Context) ([]*domain.WellnessEntry, error) {
	out := make([]*domain.WellnessEntry, 0, len(r.entries))
	for _, e := range r.entries {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (r *stubWellnessRepo) Update(_ context.Context, id, ownerID string, upd ports.UpdateWellnessEntry) (*domain.WellnessEntry, error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, domain.ErrEntryNotFound
	}
	if e.OwnerID != ownerID {
		return nil, domain.ErrForbidden
	}
	if upd.SessionType != nil {
		e.SessionType = *upd.SessionType
	}
	if upd.Mood != nil {
		e.Mood = *upd.Mood
	}
	if upd.SleepHours != nil {
		e.SleepHours = *upd.SleepHours
	}
	if upd.Comments != nil {
		e.Comments = *upd.Comments
	}
	cp := *e
	return &cp, nil
}

func (r *stubWellnessRepo) Delete(_ context.Context, id, ownerID string) error {
	e, ok := r.entries[id]
	if !ok {
		return domain.ErrEntryNotFound
	}
	if e.OwnerID != ownerID {
		return domain.ErrForbidden
	}
	delete(r.entries, id)
	return nil
}

func (r *stubWellnessRepo) DeleteByOwner(_ context.Context, ownerID string) (int64, error) {
	var n int64
	for id, e := range r.entries {
		if e.OwnerID == ownerID {
			delete(r.entries, id)
			n++
		}
	}
	return n, nil
}

type stubSectionRepo struct {
	sections map[string]*domain.Section
	seq      int
}

func newStubSectionRepo() *stubSectionRepo {
	return &stubSectionRepo{sections: make(map[string]*domain.Section)}
}

func (r *stubSectionRepo) Insert(_ context.Context, s *domain.Section) (*domain.Section, error) {
	for _, existing := range r.sections {
		if existing.Name == s.Name {
			return nil, domain.ErrSectionExists
		}
	}
	r.seq++
	created := *s
	created.ID = fmt.Sprintf("s%d", r.seq)
	r.sections[created.ID] = &created
	cp := created
	return &cp, nil
}

func (r *stubSectionRepo) FindByID(_ context.Context, id string) (*domain.Section, error) {
	s, ok := r.sections[id]
	if !ok {
		return nil, domain.ErrSectionNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *stubSectionRepo) FindBySlug(_ context.Context, slug string) (*domain.Section, error) {
	for _, s := range r.sections {
		if s.Slug != "" && s.Slug == slug {
			cp := *s
			return &cp, nil
		}
	}
	return nil, domain.ErrSectionNotFound
}

func (r *stubSectionRepo) List(_ context.Context) ([]*domain.Section, error) {
	out := make([]*domain.Section, 0, len(r.sections))
	for _, s := range r.sections {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (r *stubSectionRepo) Update(_ context.Context, id string, upd ports.UpdateSection) (*domain.Section, error) {
	s, ok := r.sections[id]
	if !ok {
		return nil, domain.ErrSectionNotFound
	}
	if upd.Name != nil {
		s.Name = *upd.Name
	}
	if upd.Slug != nil {
		s.Slug = *upd.Slug
	}
	if upd.Description != nil {
		s.Description = *upd.Description
	}
	if upd.ImageURL != nil {
		s.ImageURL = *upd.ImageURL
	}
	cp := *s
	return &cp, nil
}

func (r *stubSectionRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.sections[id]; !ok {
		return domain.ErrSectionNotFound
	}
	delete(r.sections, id)
	return nil
}

func (r *stubSectionRepo) AddMember(_ context.Context, sectionID, userID string) error {
	s, ok := r.sections[sectionID]
	if !ok {
		return domain.ErrSectionNotFound
	}
	for _, m := range s.MemberIDs {
		if m == userID {
			return nil
		}
	}
	s.MemberIDs = append(s.MemberIDs, userID)
	return nil
}

func (r *stubSectionRepo) RemoveMember(_ context.Context, sectionID, userID string) error {
	s, ok := r.sections[sectionID]
	if !ok {
		return domain.ErrSectionNotFound
	}
	out := s.MemberIDs[:0]
	for _, m := range s.MemberIDs {
		if m != userID {
			out = append(out, m)
		}
	}
	s.MemberIDs = out
	return nil
}

func (r *stubSectionRepo) RemoveMemberAll(_ context.Context, userID string) error {
	for _, s := range r.sections {
		out := s.MemberIDs[:0]
		for _, m := range s.MemberIDs {
			if m != userID {
				out = append(out, m)
			}
		}
		s.MemberIDs = out
	}
	return nil
}

// stubCache is an in-memory ContentCache that records invalidations.
type stubCache struct {
	data        map[string][]byte
	invalidated []string
}

func newStubCache() *stubCache {
	return &stubCache{data: make(map[string][]byte)}
}

func (c *stubCache) GetJSON(_ context.Context, key string, dest any) (bool, error) {
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *stubCache) SetJSON(_ context.Context, key string, v any, _ time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.data[key] = raw
	return nil
}

func (c *stubCache) Invalidate(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.data, k)
		c.invalidated = append(c.invalidated, k)
	}
	return nil
}
