// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package glplay

import (
	"fmt"

	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/userinput"
)

type featureRequest struct {
	request gui.FeatureReq
	args    []interface{}
}

// ReqFeature implements the gui.GUI interface.
//
// Requests are serviced by the Service() function in the main thread, which
// is why this works from any goroutine.
func (scr *GlPlay) ReqFeature(request gui.FeatureReq, args ...interface{}) error {
	scr.featureReq <- featureRequest{request: request, args: args}
	return <-scr.featureErr
}

// feature requests are handed over to the featureReq channel. we service any
// requests on that channel here.
func (scr *GlPlay) serviceFeatureRequests(request featureRequest) {
	// lazy (but clear) handling of type assertion errors
	defer func() {
		if r := recover(); r != nil {
			scr.featureErr <- fmt.Errorf("glplay: %v", r)
		}
	}()

	var err error

	switch request.request {
	case gui.ReqSetUserInput:
		scr.events = request.args[0].(chan userinput.Event)

	case gui.ReqSetVisibility:
		scr.showWindow(request.args[0].(bool))

	case gui.ReqSetScale:
		err = scr.setScaling(request.args[0].(float32))

	case gui.ReqState:
		scr.setState(request.args[0].(gui.EmulationState))

	default:
		err = fmt.Errorf("glplay: unsupported feature request (%s)", request.request)
	}

	scr.featureErr <- err
}
