package component

type SunTag struct{}

var SunTagComponent = NewComponent[SunTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

type ControllerTag struct{}

var ControllerTagComponent = NewComponent[ControllerTag]()
