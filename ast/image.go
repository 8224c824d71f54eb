//-----------------------------------------------------------------------------
// Copyright (c) 2026-present Detlef Stern
//
// This file is part of mdast.
//
// mdast is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package ast

// ImageDescriptor is the normalized form of an inline image, optionally
// wrapped in a link.
type ImageDescriptor struct {
	Source         string // Source of the image, possibly empty.
	HasSource      bool   // Always true for images.
	Alt            string // Plain text of the image description.
	Destination    string // Destination of the wrapping link, valid if HasDestination.
	HasDestination bool
}

// AsImage returns the image descriptor of an inline, if it is an image or a
// link whose only child is an image. All other inlines return false.
func AsImage(in Inline) (ImageDescriptor, bool) {
	switch n := in.(type) {
	case *Image:
		return imageDescriptor(n), true
	case *Link:
		if len(n.Inlines) != 1 {
			break
		}
		if img, ok := n.Inlines[0].(*Image); ok {
			desc := imageDescriptor(img)
			desc.Destination = n.Destination
			desc.HasDestination = true
			return desc, true
		}
	}
	return ImageDescriptor{}, false
}

func imageDescriptor(img *Image) ImageDescriptor {
	return ImageDescriptor{
		Source:    img.Source,
		HasSource: true,
		Alt:       PlainText(img.Inlines),
	}
}
