package content

// RemainingProposals compares an AI-generated draft against the working copy
// and returns the draft fields that still represent a real, unapplied
// change. Proposals the user already applied by hand are filtered out. A nil
// draft yields no proposals.
//
// Only fields the human-review UI surfaces participate: title, sku, the two
// HTML bodies, the nested SEO pair, and image alt text. Stray draft values
// outside this subset (a slug or vendor proposal, say) are ignored
// everywhere, a deliberate scope limitation of the review flow.
func RemainingProposals(draft, working *ContentData) []string {
	if draft == nil {
		return []string{}
	}
	if working == nil {
		working = &ContentData{}
	}

	remaining := make([]string, 0, 4)

	if proposesValue(draft.Title, working.Title) {
		remaining = append(remaining, FieldTitle)
	}
	if proposesValue(draft.SKU, working.SKU) {
		remaining = append(remaining, FieldSKU)
	}
	if proposesHTML(draft.Description, working.Description) {
		remaining = append(remaining, FieldDescription)
	}
	if proposesHTML(draft.ShortDescription, working.ShortDescription) {
		remaining = append(remaining, FieldShortDescription)
	}
	if proposesValue(draft.seoTitle(), working.seoTitle()) {
		remaining = append(remaining, FieldSEOTitle)
	}
	if proposesValue(draft.seoDescription(), working.seoDescription()) {
		remaining = append(remaining, FieldSEODescription)
	}
	if proposesImageAlts(draft.Images, working.Images) {
		remaining = append(remaining, FieldImages)
	}

	return remaining
}

// IsDraftAlreadyApplied reports whether every draft proposal already matches
// the working copy, letting callers silently treat the draft as moot without
// requiring an explicit rejection.
func IsDraftAlreadyApplied(draft, working *ContentData) bool {
	return len(RemainingProposals(draft, working)) == 0
}

// HasRemainingDraftContent reports whether the draft holds anything worth
// surfacing at all, independent of comparison with the working copy. The
// field subset is narrower than RemainingProposals checks (no tag or
// category values): it mirrors what the review UI can actually display.
func HasRemainingDraftContent(draft *ContentData) bool {
	if draft == nil {
		return false
	}
	if NormalizeValue(draft.Title) != "" {
		return true
	}
	if NormalizeHTML(draft.Description) != "" {
		return true
	}
	if NormalizeHTML(draft.ShortDescription) != "" {
		return true
	}
	if NormalizeValue(draft.SKU) != "" {
		return true
	}
	for _, image := range draft.Images {
		if NormalizeValue(image.Alt) != "" {
			return true
		}
	}
	if NormalizeValue(draft.seoTitle()) != "" {
		return true
	}
	if NormalizeValue(draft.seoDescription()) != "" {
		return true
	}
	return false
}

func proposesValue(draftValue, workingValue string) bool {
	normalized := NormalizeValue(draftValue)
	return normalized != "" && normalized != NormalizeValue(workingValue)
}

func proposesHTML(draftValue, workingValue string) bool {
	normalized := NormalizeHTML(draftValue)
	return normalized != "" && normalized != NormalizeHTML(workingValue)
}

// proposesImageAlts compares alt text positionally: draft.Images[i] against
// working.Images[i]. A draft image past the end of the working list counts
// as a proposal. Reordering images between generation and review can
// therefore misattribute a proposal; kept for compatibility with the
// store-side review flow.
func proposesImageAlts(draftImages, workingImages []Image) bool {
	for i, image := range draftImages {
		alt := NormalizeValue(image.Alt)
		if alt == "" {
			continue
		}
		if i >= len(workingImages) {
			return true
		}
		if alt != NormalizeValue(workingImages[i].Alt) {
			return true
		}
	}
	return false
}
