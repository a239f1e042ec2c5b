package gallery

// clientScript runs the widget protocol in the browser: it applies
// commands to the global mdc namespace and reports widget events, DOM
// events and focus changes back over the websocket.
const clientScript = `(function () {
  var kinds = {
    MDCRipple: ["ripple", "MDCRipple"],
    MDCCheckbox: ["checkbox", "MDCCheckbox"],
    MDCFormField: ["formField", "MDCFormField"],
    MDCRadio: ["radio", "MDCRadio"],
    MDCSelect: ["select", "MDCSelect"],
    MDCTextField: ["textField", "MDCTextField"],
    MDCDialog: ["dialog", "MDCDialog"],
    MDCSnackbar: ["snackbar", "MDCSnackbar"],
    MDCTab: ["tab", "MDCTab"],
    MDCTabBar: ["tabBar", "MDCTabBar"],
    MDCDataTable: ["dataTable", "MDCDataTable"],
    MDCIconButtonToggle: ["iconButton", "MDCIconButtonToggle"],
    MDCTooltip: ["tooltip", "MDCTooltip"]
  };
  var mount = document.getElementById("` + MountID + `");
  var scheme = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(scheme + location.host + "/ws");
  var widgets = {};
  var listeners = {};

  function send(m) {
    if (ws.readyState === WebSocket.OPEN) ws.send(JSON.stringify(m));
  }
  function resolve(v) {
    if (Array.isArray(v)) return v.map(resolve);
    if (v && typeof v === "object" && v.$widget) return widgets[v.$widget];
    return v;
  }
  function plain(d) {
    try { return JSON.parse(JSON.stringify(d || {})); } catch (e) { return {}; }
  }
  function morph(from, to) {
    if (from.nodeType !== to.nodeType || from.nodeName !== to.nodeName) {
      from.replaceWith(to.cloneNode(true));
      return;
    }
    if (from.nodeType === Node.TEXT_NODE) {
      if (from.nodeValue !== to.nodeValue) from.nodeValue = to.nodeValue;
      return;
    }
    if (from.nodeType !== Node.ELEMENT_NODE) return;
    if (from !== mount) {
      for (var i = from.attributes.length - 1; i >= 0; i--) {
        var name = from.attributes[i].name;
        if (!to.hasAttribute(name)) from.removeAttribute(name);
      }
      for (var j = 0; j < to.attributes.length; j++) {
        var a = to.attributes[j];
        if (from.getAttribute(a.name) !== a.value) from.setAttribute(a.name, a.value);
      }
    }
    var fc = Array.prototype.slice.call(from.childNodes);
    var tc = Array.prototype.slice.call(to.childNodes);
    for (var k = 0; k < tc.length; k++) {
      if (k < fc.length) morph(fc[k], tc[k]);
      else from.appendChild(tc[k].cloneNode(true));
    }
    for (var n = tc.length; n < fc.length; n++) from.removeChild(fc[n]);
  }
  function focus() {
    var a = document.activeElement;
    var ref = a && a.closest ? a.closest("[data-mdc-ref]") : null;
    send({type: "focus", hasFocus: document.hasFocus(), active: ref ? ref.getAttribute("data-mdc-ref") : ""});
  }

  ws.onmessage = function (ev) {
    var c = JSON.parse(ev.data);
    var w = widgets[c.id];
    try {
      switch (c.op) {
      case "render":
        var next = document.createElement("div");
        next.innerHTML = c.html;
        morph(mount, next);
        break;
      case "create":
        var k = kinds[c.kind];
        var el = mount.querySelector('[data-mdc-ref="' + c.root + '"]');
        widgets[c.id] = new mdc[k[0]][k[1]](el);
        break;
      case "destroy":
        if (w) w.destroy();
        delete widgets[c.id];
        break;
      case "listen":
        var fn = function (e) { send({type: "event", id: c.id, name: c.event, detail: plain(e.detail)}); };
        listeners[c.id + " " + c.event] = fn;
        w.listen(c.event, fn);
        break;
      case "unlisten":
        w.unlisten(c.event, listeners[c.id + " " + c.event]);
        delete listeners[c.id + " " + c.event];
        break;
      case "set":
        w[c.field] = resolve(c.value);
        break;
      case "call":
        w[c.method].apply(w, resolve(c.args || []));
        break;
      }
    } catch (err) {
      send({type: "error", id: c.id || "", error: String(err)});
    }
  };

  ["click", "input", "change"].forEach(function (type) {
    mount.addEventListener(type, function (e) {
      var t = e.target.closest ? e.target.closest("[data-on-" + type + "]") : null;
      if (!t || !t.dataset.hid) return;
      send({type: "dom", hid: t.dataset.hid, event: type, value: "value" in t ? String(t.value) : ""});
    });
  });
  document.addEventListener("focusin", focus);
  document.addEventListener("focusout", function () { setTimeout(focus, 0); });
})();`
