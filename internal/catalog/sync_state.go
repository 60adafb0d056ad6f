package catalog

import (
	"time"

	"github.com/Wilson971/Flowis-sub010/content"
)

// RecomputeDirtyFields refreshes the derived dirty-field cache. Every
// mutation to the working copy or the snapshot must call this before the
// record is persisted.
func (s *SyncState) RecomputeDirtyFields() {
	s.DirtyFieldsContent = content.ComputeDirtyFields(s.WorkingContent, s.StoreSnapshotContent)
}

// RemainingProposals returns the draft fields that still represent a real,
// unapplied change against the working copy.
func (s *SyncState) RemainingProposals() []string {
	return content.RemainingProposals(s.DraftGeneratedContent, s.WorkingContent)
}

// HasPendingDraft reports whether a draft exists and still proposes at
// least one change. A draft whose every proposal already matches the
// working copy is fictive and does not count.
func (s *SyncState) HasPendingDraft() bool {
	if s.DraftGeneratedContent == nil {
		return false
	}
	if !content.HasRemainingDraftContent(s.DraftGeneratedContent) {
		return false
	}
	return !content.IsDraftAlreadyApplied(s.DraftGeneratedContent, s.WorkingContent)
}

// Status classifies the record for display. Re-evaluated on every read.
func (s *SyncState) Status() content.Status {
	return content.ContentStatus(s.DirtyFieldsContent, s.HasPendingDraft(), s.SyncConflict)
}

// AcceptDraftField moves one field's value from the draft into the working
// copy and removes it from the draft. Once the draft holds nothing the
// review UI can surface, the whole draft is cleared.
func (s *SyncState) AcceptDraftField(field string) error {
	if s.DraftGeneratedContent == nil {
		return ErrNoDraft
	}
	if s.WorkingContent == nil {
		s.WorkingContent = &content.ContentData{}
	}
	draft := s.DraftGeneratedContent
	working := s.WorkingContent

	switch field {
	case content.FieldTitle:
		working.Title = draft.Title
		draft.Title = ""
	case content.FieldSKU:
		working.SKU = draft.SKU
		draft.SKU = ""
	case content.FieldDescription:
		working.Description = draft.Description
		draft.Description = ""
	case content.FieldShortDescription:
		working.ShortDescription = draft.ShortDescription
		draft.ShortDescription = ""
	case content.FieldSEOTitle:
		if draft.SEO != nil {
			if working.SEO == nil {
				working.SEO = &content.SEO{}
			}
			working.SEO.Title = draft.SEO.Title
			draft.SEO.Title = ""
		}
	case content.FieldSEODescription:
		if draft.SEO != nil {
			if working.SEO == nil {
				working.SEO = &content.SEO{}
			}
			working.SEO.Description = draft.SEO.Description
			draft.SEO.Description = ""
		}
	case content.FieldImages:
		s.acceptImageAlts()
	default:
		return ErrFieldNotProposable
	}

	s.pruneDraft()
	s.RecomputeDirtyFields()
	return nil
}

// RejectDraftField deletes one field from the draft without touching the
// working copy.
func (s *SyncState) RejectDraftField(field string) error {
	if s.DraftGeneratedContent == nil {
		return ErrNoDraft
	}
	draft := s.DraftGeneratedContent

	switch field {
	case content.FieldTitle:
		draft.Title = ""
	case content.FieldSKU:
		draft.SKU = ""
	case content.FieldDescription:
		draft.Description = ""
	case content.FieldShortDescription:
		draft.ShortDescription = ""
	case content.FieldSEOTitle:
		if draft.SEO != nil {
			draft.SEO.Title = ""
		}
	case content.FieldSEODescription:
		if draft.SEO != nil {
			draft.SEO.Description = ""
		}
	case content.FieldImages:
		for i := range draft.Images {
			draft.Images[i].Alt = ""
		}
	default:
		return ErrFieldNotProposable
	}

	s.pruneDraft()
	return nil
}

// ApplyDraft accepts every remaining proposal in one step.
func (s *SyncState) ApplyDraft() error {
	if s.DraftGeneratedContent == nil {
		return ErrNoDraft
	}
	for _, field := range s.RemainingProposals() {
		if s.DraftGeneratedContent == nil {
			break
		}
		if err := s.AcceptDraftField(field); err != nil {
			return err
		}
	}
	// Nothing left to review either way.
	s.DraftGeneratedContent = nil
	s.RecomputeDirtyFields()
	return nil
}

// RevertToSnapshot discards local edits: the working copy becomes a copy of
// the store snapshot and the dirty cache clears. Local-only; the remote
// store is never contacted.
func (s *SyncState) RevertToSnapshot() {
	s.WorkingContent = s.StoreSnapshotContent.Clone()
	s.DirtyFieldsContent = []string{}
}

// MarkSynced records a successful push: the snapshot adopts the working
// copy, the dirty cache clears, the conflict flag drops, and the sync time
// is stamped.
func (s *SyncState) MarkSynced(at time.Time) {
	s.StoreSnapshotContent = s.WorkingContent.Clone()
	s.DirtyFieldsContent = []string{}
	s.SyncConflict = false
	s.LastSyncedAt = &at
}

// acceptImageAlts applies draft alt texts onto working images positionally,
// appending draft images past the end of the working list.
func (s *SyncState) acceptImageAlts() {
	draft := s.DraftGeneratedContent
	working := s.WorkingContent

	for i, image := range draft.Images {
		alt := content.NormalizeValue(image.Alt)
		if alt == "" {
			continue
		}
		if i < len(working.Images) {
			working.Images[i].Alt = image.Alt
		} else {
			working.Images = append(working.Images, image)
		}
	}
	for i := range draft.Images {
		draft.Images[i].Alt = ""
	}
}

// pruneDraft clears the draft buffer entirely once it holds nothing the
// review UI can surface.
func (s *SyncState) pruneDraft() {
	if !content.HasRemainingDraftContent(s.DraftGeneratedContent) {
		s.DraftGeneratedContent = nil
	}
}
