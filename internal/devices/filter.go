package devices

import "strings"

type FilterOptions struct {
	Platform  string // exact platform, "" for any
	FreeWords string // every word must appear in the name or slug
}

func Filter(ds []Device, opt FilterOptions) []Device {
	platform := strings.ToLower(strings.TrimSpace(opt.Platform))
	words := strings.Fields(strings.ToLower(opt.FreeWords))

	out := []Device{}
	for _, d := range ds {
		if platform != "" && d.Platform != platform {
			continue
		}
		name := strings.ToLower(d.Name)
		ok := true
		for _, w := range words {
			if !strings.Contains(name, w) && !strings.Contains(d.Slug, w) {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		out = append(out, d)
	}
	return out
}
