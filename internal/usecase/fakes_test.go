package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"connekt/internal/domain/entity"
	"connekt/internal/domain/repository"
	"connekt/internal/domain/service"
	"connekt/pkg/errors"
)

var (
	testNow   = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	errBoom   = errors.Internal("backend unavailable", nil)
	fixedTime = func() time.Time { return testNow }
)

// fakeProfileRepo stores profiles as generic documents so Merge behaves like
// a Firestore MergeAll write: nested maps merge, anything else replaces.
type fakeProfileRepo struct {
	mu      sync.Mutex
	docs    map[string]map[string]interface{}
	err     error
	merges  int
	lastQry repository.ProfileQuery
}

func newFakeProfileRepo(profiles ...*entity.Profile) *fakeProfileRepo {
	r := &fakeProfileRepo{docs: map[string]map[string]interface{}{}}
	for _, p := range profiles {
		r.docs[p.UID] = toDoc(p)
	}
	return r
}

func toDoc(v interface{}) map[string]interface{} {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(b, &doc); err != nil {
		panic(err)
	}
	return doc
}

func toValue(v interface{}) interface{} {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	var out interface{}
	if err := json.Unmarshal(b, &out); err != nil {
		panic(err)
	}
	return out
}

func fromDoc(doc map[string]interface{}) *entity.Profile {
	b, err := json.Marshal(doc)
	if err != nil {
		panic(err)
	}
	var p entity.Profile
	if err := json.Unmarshal(b, &p); err != nil {
		panic(err)
	}
	return &p
}

func mergeInto(dst map[string]interface{}, fields map[string]interface{}) {
	for k, v := range fields {
		if nested, ok := v.(map[string]interface{}); ok {
			sub, _ := dst[k].(map[string]interface{})
			if sub == nil {
				sub = map[string]interface{}{}
			}
			mergeInto(sub, nested)
			dst[k] = sub
			continue
		}
		dst[k] = toValue(v)
	}
}

func (r *fakeProfileRepo) GetByID(_ context.Context, uid string) (*entity.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	doc, ok := r.docs[uid]
	if !ok {
		return nil, errors.NotFound("Profile", nil)
	}
	return fromDoc(doc), nil
}

func (r *fakeProfileRepo) Create(_ context.Context, p *entity.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.docs[p.UID] = toDoc(p)
	return nil
}

func (r *fakeProfileRepo) Merge(_ context.Context, uid string, fields map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	doc, ok := r.docs[uid]
	if !ok {
		doc = map[string]interface{}{"uid": uid}
		r.docs[uid] = doc
	}
	mergeInto(doc, fields)
	doc["updatedAt"] = toValue(testNow)
	r.merges++
	return nil
}

func (r *fakeProfileRepo) IncrementField(_ context.Context, uid, path string, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	doc, ok := r.docs[uid]
	if !ok {
		return errors.NotFound("Profile", nil)
	}
	parts := strings.Split(path, ".")
	m := doc
	for _, p := range parts[:len(parts)-1] {
		sub, _ := m[p].(map[string]interface{})
		if sub == nil {
			sub = map[string]interface{}{}
			m[p] = sub
		}
		m = sub
	}
	last := parts[len(parts)-1]
	n, _ := m[last].(float64)
	m[last] = n + float64(delta)
	return nil
}

func (r *fakeProfileRepo) Search(_ context.Context, q repository.ProfileQuery) ([]*entity.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastQry = q
	if r.err != nil {
		return nil, r.err
	}

	uids := make([]string, 0, len(r.docs))
	for uid := range r.docs {
		uids = append(uids, uid)
	}
	sort.Strings(uids)

	var matched []*entity.Profile
	for _, uid := range uids {
		p := fromDoc(r.docs[uid])
		if len(q.SkillsAny) > 0 && !containsAny(p.Skills, q.SkillsAny) {
			continue
		}
		if len(q.Availability) > 0 && !containsAny([]string{p.Availability}, q.Availability) {
			continue
		}
		if q.Location != "" && p.Location != q.Location {
			continue
		}
		matched = append(matched, p)
	}

	if q.Offset >= len(matched) {
		return []*entity.Profile{}, nil
	}
	matched = matched[q.Offset:]
	if q.Limit > 0 && len(matched) > q.Limit {
		matched = matched[:q.Limit]
	}
	return matched, nil
}

func containsAny(have, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}

func (r *fakeProfileRepo) stored(uid string) *entity.Profile {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[uid]
	if !ok {
		return nil
	}
	return fromDoc(doc)
}

type fakeAccountRepo struct {
	accounts map[string]*entity.Account
	err      error
}

func newFakeAccountRepo(accounts ...*entity.Account) *fakeAccountRepo {
	r := &fakeAccountRepo{accounts: map[string]*entity.Account{}}
	for _, a := range accounts {
		r.accounts[a.UID] = a
	}
	return r
}

func (r *fakeAccountRepo) GetByID(_ context.Context, uid string) (*entity.Account, error) {
	if r.err != nil {
		return nil, r.err
	}
	a, ok := r.accounts[uid]
	if !ok {
		return nil, errors.NotFound("Account", nil)
	}
	cp := *a
	return &cp, nil
}

type fakeHandleRepo struct {
	handles map[string]string
}

func newFakeHandleRepo() *fakeHandleRepo {
	return &fakeHandleRepo{handles: map[string]string{}}
}

func (r *fakeHandleRepo) Resolve(_ context.Context, handle string) (string, error) {
	uid, ok := r.handles[handle]
	if !ok {
		return "", errors.NotFound("Handle", nil)
	}
	return uid, nil
}

func (r *fakeHandleRepo) Claim(_ context.Context, m *entity.HandleMapping) error {
	r.handles[m.Handle] = m.UID
	return nil
}

func (r *fakeHandleRepo) Release(_ context.Context, handle string) error {
	delete(r.handles, handle)
	return nil
}

type fakeRatingRepo struct {
	mu      sync.Mutex
	ratings map[string][]*entity.Rating
	err     error
}

func newFakeRatingRepo() *fakeRatingRepo {
	return &fakeRatingRepo{ratings: map[string][]*entity.Rating{}}
}

func (r *fakeRatingRepo) Create(_ context.Context, rating *entity.Rating) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.ratings[rating.ToUserID] = append(r.ratings[rating.ToUserID], rating)
	return nil
}

func (r *fakeRatingRepo) ListAll(_ context.Context, uid string) ([]*entity.Rating, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	return append([]*entity.Rating{}, r.ratings[uid]...), nil
}

func (r *fakeRatingRepo) ListRecent(_ context.Context, uid string, limit int) ([]*entity.Rating, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	list := append([]*entity.Rating{}, r.ratings[uid]...)
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

type fakeProjectRepo struct {
	projects []*entity.Project
	err      error
}

func (r *fakeProjectRepo) GetByID(_ context.Context, id string) (*entity.Project, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, p := range r.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, errors.NotFound("Project", nil)
}

func (r *fakeProjectRepo) ListByWorkspace(_ context.Context, workspaceID string) ([]*entity.Project, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*entity.Project
	for _, p := range r.projects {
		if p.WorkspaceID == workspaceID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeTaskRepo struct {
	tasks []*entity.Task
	err   error
}

func (r *fakeTaskRepo) ListByWorkspace(_ context.Context, workspaceID string) ([]*entity.Task, error) {
	return r.filter(func(t *entity.Task) bool { return t.WorkspaceID == workspaceID })
}

func (r *fakeTaskRepo) ListByProject(_ context.Context, projectID string) ([]*entity.Task, error) {
	return r.filter(func(t *entity.Task) bool { return t.ProjectID == projectID })
}

func (r *fakeTaskRepo) ListByAssigneeAndStatus(_ context.Context, assigneeID string, statuses []string) ([]*entity.Task, error) {
	return r.filter(func(t *entity.Task) bool {
		return t.AssigneeID == assigneeID && containsAny([]string{t.Status}, statuses)
	})
}

func (r *fakeTaskRepo) filter(keep func(*entity.Task) bool) ([]*entity.Task, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := []*entity.Task{}
	for _, t := range r.tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakeContractRepo struct {
	contracts []*entity.Contract
	err       error
}

func (r *fakeContractRepo) ListByProvider(_ context.Context, providerID string) ([]*entity.Contract, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := []*entity.Contract{}
	for _, c := range r.contracts {
		if c.ProviderID == providerID {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeWorkspaceRepo struct {
	workspaces map[string]*entity.Workspace
}

func newFakeWorkspaceRepo(ws ...*entity.Workspace) *fakeWorkspaceRepo {
	r := &fakeWorkspaceRepo{workspaces: map[string]*entity.Workspace{}}
	for _, w := range ws {
		r.workspaces[w.ID] = w
	}
	return r
}

func (r *fakeWorkspaceRepo) GetByID(_ context.Context, id string) (*entity.Workspace, error) {
	w, ok := r.workspaces[id]
	if !ok {
		return nil, errors.NotFound("Workspace", nil)
	}
	cp := *w
	cp.Members = append([]entity.WorkspaceMember(nil), w.Members...)
	return &cp, nil
}

func (r *fakeWorkspaceRepo) UpdateMembers(_ context.Context, id string, members []entity.WorkspaceMember) error {
	w, ok := r.workspaces[id]
	if !ok {
		return errors.NotFound("Workspace", nil)
	}
	w.Members = members
	return nil
}

type fakeInvitationRepo struct {
	invitations map[string]*entity.Invitation
}

func newFakeInvitationRepo() *fakeInvitationRepo {
	return &fakeInvitationRepo{invitations: map[string]*entity.Invitation{}}
}

func (r *fakeInvitationRepo) Create(_ context.Context, inv *entity.Invitation) error {
	cp := *inv
	r.invitations[inv.ID] = &cp
	return nil
}

func (r *fakeInvitationRepo) GetByID(_ context.Context, id string) (*entity.Invitation, error) {
	inv, ok := r.invitations[id]
	if !ok {
		return nil, errors.NotFound("Invitation", nil)
	}
	cp := *inv
	return &cp, nil
}

func (r *fakeInvitationRepo) Update(_ context.Context, inv *entity.Invitation) error {
	cp := *inv
	r.invitations[inv.ID] = &cp
	return nil
}

func (r *fakeInvitationRepo) ListByInvitee(_ context.Context, inviteeID, status string) ([]*entity.Invitation, error) {
	var out []*entity.Invitation
	for _, inv := range r.invitations {
		if inv.InviteeID == inviteeID && inv.Status == status {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (r *fakeInvitationRepo) ListByWorkspace(_ context.Context, workspaceID, status string) ([]*entity.Invitation, error) {
	var out []*entity.Invitation
	for _, inv := range r.invitations {
		if inv.WorkspaceID == workspaceID && inv.Status == status {
			out = append(out, inv)
		}
	}
	return out, nil
}

type fakeAgencyRepo struct {
	agencies map[string]*entity.AgencyProfile
}

func (r *fakeAgencyRepo) GetByID(_ context.Context, id string) (*entity.AgencyProfile, error) {
	a, ok := r.agencies[id]
	if !ok {
		return nil, errors.NotFound("Agency", nil)
	}
	cp := *a
	cp.Members = append([]entity.AgencyMember(nil), a.Members...)
	return &cp, nil
}

func (r *fakeAgencyRepo) Save(_ context.Context, a *entity.AgencyProfile) error {
	cp := *a
	r.agencies[a.ID] = &cp
	return nil
}

type fakeRecruiterRepo struct {
	recruiters map[string]*entity.RecruiterProfile
}

func (r *fakeRecruiterRepo) GetByID(_ context.Context, uid string) (*entity.RecruiterProfile, error) {
	rec, ok := r.recruiters[uid]
	if !ok {
		return nil, errors.NotFound("Recruiter", nil)
	}
	cp := *rec
	return &cp, nil
}

func (r *fakeRecruiterRepo) Save(_ context.Context, rec *entity.RecruiterProfile) error {
	cp := *rec
	r.recruiters[rec.UID] = &cp
	return nil
}

type fakeStorage struct {
	objects   map[string][]byte
	deleted   []string
	uploadErr error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string][]byte{}}
}

func (s *fakeStorage) Upload(_ context.Context, path string, r io.Reader, contentType string, size int64, progress service.ProgressFunc) (*service.UploadedObject, error) {
	if s.uploadErr != nil {
		return nil, s.uploadErr
	}
	var buf bytes.Buffer
	n, err := io.Copy(&buf, r)
	if err != nil {
		return nil, err
	}
	if progress != nil {
		progress(n, size)
	}
	s.objects[path] = buf.Bytes()
	return &service.UploadedObject{Path: path, URL: "https://cdn.test/" + path, ContentType: contentType, Size: n}, nil
}

func (s *fakeStorage) Download(_ context.Context, path string) (io.ReadCloser, error) {
	b, ok := s.objects[path]
	if !ok {
		return nil, errors.NotFound("File", nil)
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

func (s *fakeStorage) Delete(_ context.Context, path string) error {
	delete(s.objects, path)
	s.deleted = append(s.deleted, path)
	return nil
}

func (s *fakeStorage) Close() error { return nil }
